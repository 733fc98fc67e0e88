// shapetool is a CLI utility for inspecting and exporting generated meshes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Faultbox/shapegen/internal/shapes"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	err := run(os.Stdout, os.Args[1], os.Args[2:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, command string, args []string) error {
	switch command {
	case "info":
		return cmdInfo(w, args)
	case "check":
		return cmdCheck(w, args)
	case "export", "x":
		return cmdExport(w, args)
	case "dump":
		return cmdDump(w, args)
	case "uvmap":
		return cmdUVMap(w, args)
	case "kinds", "ls":
		fmt.Fprintln(w, strings.Join(shapes.Kinds(), "\n"))
		return nil
	case "help", "-h", "--help":
		printUsage(w)
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `shapetool - procedural mesh utility

Usage:
  shapetool <command> [options] <kind> [args]

Commands:
  info <kind>               Show vertex, triangle and line counts and bounds
  check <kind>              Validate indices and the tangent frame
  export <kind> <out>       Write .gltf or .glb
  dump <kind>               Print interleaved vertices
  uvmap <kind> <out.png>    Draw the UV layout
  kinds                     List shape kinds

Shape options (all commands):
  -side -radius -inner -tube -height -segments -sub -atlas -log

Examples:
  shapetool info -segments 32 sphere
  shapetool check torus
  shapetool export -wireframe cube cube.glb
  shapetool dump -n 4 -su 2 cube
  shapetool uvmap -atlas cube atlas.png`)
}
