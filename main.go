package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/cmd"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "whitted"
	app.Usage = "render scenes using recursive ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringSliceFlag{
			Name:  "log-level",
			Usage: "set one module's level as module=level, e.g. renderer=debug or whitted=warning",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a scene to a color image and, optionally, normal and depth images.

Flags:
  -input <file|builtin:name>   scene to render (default: builtin:default)
  -output <file>               color image (.png, .bmp, .tif, .tiff)
  -normals <file>              normal visualization image
  -size <w> <h>                frame size (default 100 100)
  -depth <min> <max> <file>    depth image over the given t range
  -bounces <n>                 mirror reflection depth (default 0)
  -shadows                     accepted for compatibility, shadows are always cast
  -dof                         enable depth of field
  -aperture <f>                lens sample grid size (default 3, implies -dof)
  -focal_length <f>            focal distance beyond the image plane (default 4, implies -dof)
  -chrom                       chromatic aberration
  -jitter                      jitter lens samples
  -filter                      Gaussian filter the color image
  -seed <n>                    jitter random seed (default 42)`,
			ArgsUsage:       "-input scene.txt -output out.png [flags]",
			SkipFlagParsing: true,
			Action:          cmd.RenderFrame,
		},
		{
			Name:      "inspect",
			Usage:     "summarize a scene file, a rendered image, or a directory of scenes",
			ArgsUsage: "scene.txt | image.png | scenes/",
			Action:    cmd.InspectScene,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
