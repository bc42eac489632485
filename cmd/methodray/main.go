// Command methodray is the CLI entrypoint: "methodray check <files...>",
// with flags for signature loading, caching, and watch mode, plus a
// "methodray serve" command that exposes the checker over gRPC. main() dispatches through a sequence of handleXxx()
// functions the way cmd/funxy/main.go does, each claiming the command line
// or declining and letting the next handler look.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/methodray/methodray/internal/analyzer"
	"github.com/methodray/methodray/internal/config"
	"github.com/methodray/methodray/internal/diagnostics"
	"github.com/methodray/methodray/internal/lintservice"
	"github.com/methodray/methodray/internal/sigfile"
	"github.com/methodray/methodray/internal/watch"
	"github.com/methodray/methodray/pkg/embed"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	if handleHelp() {
		return
	}
	if handleVersion() {
		return
	}
	if handleServe() {
		return
	}
	if handleCheck() {
		return
	}

	fmt.Fprintln(os.Stderr, "Usage: methodray check <files...> [flags]")
	fmt.Fprintln(os.Stderr, "Run 'methodray help' for details.")
	os.Exit(1)
}

func handleHelp() bool {
	if len(os.Args) < 2 || os.Args[1] == "help" || os.Args[1] == "-h" || os.Args[1] == "--help" {
		printUsage()
		return true
	}
	return false
}

func printUsage() {
	fmt.Println("methodray — a static type checker for a dynamically-typed OO scripting language")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  methodray check <files...> [flags]")
	fmt.Println("  methodray serve --addr <host:port> [flags]")
	fmt.Println("  methodray version")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --signatures <file.yaml>  load external method signatures before checking")
	fmt.Println("  --cache <file.db>         cache results by source content hash")
	fmt.Println("  --watch                   recheck watched files as they change")
	fmt.Println("  --no-color                disable colored diagnostic output")
}

func handleVersion() bool {
	if len(os.Args) >= 2 && os.Args[1] == "version" {
		fmt.Println(config.Version)
		return true
	}
	return false
}

func handleServe() bool {
	if len(os.Args) < 2 || os.Args[1] != "serve" {
		return false
	}

	addr := ""
	sigPath := ""
	args := os.Args[2:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--addr":
			if i+1 < len(args) {
				i++
				addr = args[i]
			}
		case "--signatures":
			if i+1 < len(args) {
				i++
				sigPath = args[i]
			}
		}
	}
	if addr == "" {
		fmt.Fprintln(os.Stderr, "serve: --addr <host:port> is required")
		os.Exit(1)
	}

	var sigFile *sigfile.File
	if sigPath != "" {
		f, err := sigfile.LoadFile(sigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "serve: %s\n", err)
			os.Exit(1)
		}
		sigFile = f
	}

	seed := lintservice.DefaultSeed
	if sigFile != nil {
		seed = func(d *analyzer.Driver) {
			lintservice.DefaultSeed(d)
			if err := sigFile.Apply(d); err != nil {
				fmt.Fprintf(os.Stderr, "serve: %s\n", err)
			}
		}
	}

	srv, err := lintservice.NewServer(seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "serve: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("methodray serving on %s\n", addr)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "serve: %s\n", err)
		os.Exit(1)
	}
	return true
}

func handleCheck() bool {
	if len(os.Args) < 2 {
		return false
	}
	if os.Args[1] != "check" && !looksLikeSourceArg(os.Args[1]) {
		return false
	}

	args := os.Args[1:]
	if args[0] == "check" {
		args = args[1:]
	}

	var files []string
	var sigPath, cachePath string
	var watchMode, noColor bool

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--signatures":
			if i+1 < len(args) {
				i++
				sigPath = args[i]
			}
		case arg == "--cache":
			if i+1 < len(args) {
				i++
				cachePath = args[i]
			}
		case arg == "--watch":
			watchMode = true
		case arg == "--no-color":
			noColor = true
		case strings.HasPrefix(arg, "-"):
			fmt.Fprintf(os.Stderr, "check: unrecognized flag %s\n", arg)
			os.Exit(1)
		default:
			files = append(files, arg)
		}
	}

	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "check: at least one file is required")
		os.Exit(1)
	}

	checker := embed.New()
	if sigPath != "" {
		if err := checker.LoadSignatures(sigPath); err != nil {
			fmt.Fprintf(os.Stderr, "check: %s\n", err)
			os.Exit(1)
		}
	}
	if cachePath != "" {
		if err := checker.WithCache(cachePath); err != nil {
			fmt.Fprintf(os.Stderr, "check: %s\n", err)
			os.Exit(1)
		}
		defer checker.Close()
	}

	renderer := diagnostics.NewRenderer(os.Stdout)
	if noColor {
		renderer = renderer.WithColor(false)
	}

	runCheck := func() bool {
		clean := true
		for _, f := range files {
			result, err := checker.CheckFile(f)
			if err != nil {
				fmt.Fprintf(os.Stderr, "check: %s\n", err)
				clean = false
				continue
			}
			if len(result.Errors) > 0 {
				clean = false
			}
			renderer.Render(result.Errors)
		}
		return clean
	}

	clean := runCheck()

	if watchMode {
		stop := make(chan struct{})
		w := watch.New(files, 500*time.Millisecond)
		w.Run(stop, func(changed []string) {
			fmt.Printf("--- rechecking %s ---\n", strings.Join(changed, ", "))
			runCheck()
		})
		return true
	}

	if !clean {
		os.Exit(1)
	}
	return true
}

func looksLikeSourceArg(arg string) bool {
	return config.HasSourceExt(arg)
}
