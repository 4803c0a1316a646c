package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	waffle "github.com/1broseidon/glwaffle"
	"github.com/1broseidon/glwaffle/internal/config"
	"github.com/1broseidon/glwaffle/internal/logging"
	"github.com/1broseidon/glwaffle/internal/probe"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "config":
			os.Exit(runConfig(os.Args[2:]))
		case "mcp":
			os.Exit(runMCP(os.Args[2:]))
		case "platforms":
			os.Exit(runPlatforms(os.Args[2:]))
		case "help", "-h", "--help":
			printMainUsage(os.Stdout)
			os.Exit(0)
		}
	}
	os.Exit(runProbe(os.Args[1:]))
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wflinfo [options]")
	fmt.Fprintln(w, "       wflinfo <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Create a context and print the GL implementation's vendor, renderer and version.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -p, --platform NAME  Platform (glx, x11_egl, wayland, gbm, surfaceless_egl, ...)")
	fmt.Fprintln(w, "  -a, --api NAME       Context API: gl, gles1, gles2, gles3")
	fmt.Fprintln(w, "  -V, --version M.N    Context version")
	fmt.Fprintln(w, "      --profile NAME   Context profile: core, compat, none")
	fmt.Fprintln(w, "      --display NAME   Native display name")
	fmt.Fprintln(w, "      --format FORMAT  Output format: text, json")
	fmt.Fprintln(w, "  -v, --verbose        Include the extension list")
	fmt.Fprintln(w, "      --config PATH    Config file (default: ~/.config/glwaffle/config.yaml)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  platforms           List platforms and whether this build supports them")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "  config explain      Explain a config value")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
}

// loadConfig loads path, or the default config file when path is empty.
func loadConfig(path string) (*config.LoadResult, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

// applyConfig points the library at configured libraries and logger.
func applyConfig(cfg *config.Config) {
	waffle.SetLogger(logging.New(os.Stderr, cfg.LogLevel, cfg.Format))
	for key, path := range cfg.Libraries {
		waffle.SetLibraryPath(key, path)
	}
}

func runProbe(args []string) int {
	fs := flag.NewFlagSet("wflinfo", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { printMainUsage(os.Stderr) }

	var (
		platformName, api, version, profile string
		verbose                             bool
	)
	fs.StringVar(&platformName, "p", "", "platform")
	fs.StringVar(&platformName, "platform", "", "platform")
	fs.StringVar(&api, "a", "", "context API")
	fs.StringVar(&api, "api", "", "context API")
	fs.StringVar(&version, "V", "", "context version")
	fs.StringVar(&version, "version", "", "context version")
	fs.StringVar(&profile, "profile", "", "context profile")
	fs.BoolVar(&verbose, "v", false, "include extensions")
	fs.BoolVar(&verbose, "verbose", false, "include extensions")
	display := fs.String("display", "", "native display name")
	format := fs.String("format", "", "output format")
	path := fs.String("config", "", "config file path")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n\n", fs.Arg(0))
		printMainUsage(os.Stderr)
		return 2
	}

	res, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	cfg := res.Config
	if platformName != "" {
		cfg.Platform = platformName
	}
	if api != "" {
		cfg.API = api
	}
	if version != "" {
		cfg.Version = version
	}
	if profile != "" {
		cfg.Profile = profile
	}
	if *display != "" {
		cfg.Display = *display
	}
	if *format != "" {
		cfg.Format = *format
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	applyConfig(cfg)

	rep, err := probe.Run(probe.Request{Config: cfg, Verbose: verbose})
	if err != nil {
		fmt.Fprintf(os.Stderr, "wflinfo: %v\n", err)
		if waffle.CodeOf(err) == waffle.ErrUnsupported {
			return 3
		}
		return 1
	}

	switch width := terminalWidth(os.Stdout); {
	case cfg.Format == "json":
		err = rep.WriteJSON(os.Stdout)
	case width > 0:
		var b strings.Builder
		if err = rep.WriteText(&b, width); err == nil {
			_, err = io.WriteString(os.Stdout, styleReport(b.String()))
		}
	default:
		err = rep.WriteText(os.Stdout, 0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// terminalWidth returns the width of f when it is a terminal, else 0.
func terminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

func runPlatforms(args []string) int {
	fs := flag.NewFlagSet("platforms", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wflinfo platforms")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List platform names and whether this build can initialize them.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	for _, p := range probe.Platforms() {
		mark := " "
		if p.Available {
			mark = "*"
		}
		fmt.Printf("%s %-16s %s\n", mark, p.Name, p.Enum)
	}
	return 0
}
