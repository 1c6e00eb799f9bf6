package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectScene prints a summary of a scene file, a rendered image, or every
// scene in a directory.
func InspectScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return cli.NewExitError("expected a scene file, image or directory argument", 1)
	}
	target := ctx.Args().First()

	summary, err := inspect(target)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	fmt.Fprint(ctx.App.Writer, summary)
	return nil
}

func inspect(target string) (string, error) {
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return sceneListTable(target)
	}

	if _, err := renderer.FormatForPath(target); err == nil {
		data, err := loaders.LoadImage(target)
		if err != nil {
			return "", err
		}
		return imageTable(target, data), nil
	}

	sc, err := loadScene(target)
	if err != nil {
		return "", err
	}
	return sceneTable(target, sc), nil
}

func sceneListTable(dir string) (string, error) {
	files, err := scene.ListSceneFiles(dir)
	if err != nil {
		return "", err
	}
	all := append(scene.BuiltinScenes(), files...)
	if len(all) == 0 {
		return "", errors.New("no scenes found")
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Type", "Description"})
	for _, info := range all {
		table.Append([]string{info.ID, info.Name, info.Type, info.Description})
	}
	table.Render()
	return buf.String(), nil
}

func sceneTable(name string, sc *scene.Scene) string {
	var points, directional int
	for _, light := range sc.Lights {
		switch light.Type() {
		case lights.LightTypePoint:
			points++
		case lights.LightTypeDirectional:
			directional++
		}
	}

	cam := sc.Camera
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})
	table.AppendBulk([][]string{
		{"Scene", name},
		{"Camera center", fmt.Sprintf("%.3g %.3g %.3g", cam.Center.X, cam.Center.Y, cam.Center.Z)},
		{"Camera direction", fmt.Sprintf("%.3g %.3g %.3g", cam.Direction.X, cam.Direction.Y, cam.Direction.Z)},
		{"Field of view", fmt.Sprintf("%.1f deg", cam.Angle*180/math.Pi)},
		{"Point lights", fmt.Sprintf("%d", points)},
		{"Directional lights", fmt.Sprintf("%d", directional)},
		{"Materials", fmt.Sprintf("%d", len(sc.Materials))},
		{"Primitives", fmt.Sprintf("%d", sc.GetPrimitiveCount())},
	})
	table.Render()
	return buf.String()
}

func imageTable(name string, data *loaders.ImageData) string {
	mean := data.Mean()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})
	table.AppendBulk([][]string{
		{"Image", name},
		{"Format", data.Format},
		{"Size", fmt.Sprintf("%dx%d", data.Width, data.Height)},
		{"Mean color", fmt.Sprintf("%.3f %.3f %.3f", mean.X, mean.Y, mean.Z)},
	})
	table.Render()
	return buf.String()
}
