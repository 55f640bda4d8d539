package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2post <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert markdown files to rich-text post JSON")
	fmt.Fprintln(w, "  preview     Print a post as wrapped plain text")
	fmt.Fprintln(w, "  detect      Report whether input looks like markdown")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2post help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2post convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to rich-text post JSON.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, directory, or - for stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .json file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --compact             Write compact JSON")
	fmt.Fprintln(w)
	printPostFlagsUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Message:")
	fmt.Fprintln(w, "      --envelope            Wrap the post in a send-message request body")
	fmt.Fprintln(w, "      --receive-id <id>     Recipient of the envelope")
	fmt.Fprintln(w)
	printOutputControlUsage(w)
	fmt.Fprintln(w)
	printEnvUsage(w)
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2post preview <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown and print the post as plain text wrapped to the terminal.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or - for stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Display:")
	fmt.Fprintln(w, "      --width <n>           Wrap width (0 = terminal width, $COLUMNS, or 80)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	printPostFlagsUsage(w)
	fmt.Fprintln(w)
	printOutputControlUsage(w)
}

// printDetectUsage prints usage for the detect command.
func printDetectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2post detect <input>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print \"markdown\" when the input contains markdown syntax, \"plain\" otherwise.")
	fmt.Fprintln(w, "The check is a quick scan and favors false positives.")
}

func printPostFlagsUsage(w io.Writer) {
	fmt.Fprintln(w, "Post:")
	fmt.Fprintln(w, "      --locale <s>          Locale: zh_cn, en_us, ja_jp")
	fmt.Fprintln(w, "      --bullet <s>          Bullet list glyph (default \"•\")")
	fmt.Fprintln(w, "      --nested-indent <s>   Indent per nested list level (default two spaces)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markdown:")
	fmt.Fprintln(w, "      --linkify             Turn bare URLs into links")
	fmt.Fprintln(w, "      --front-matter        Strip and parse YAML front matter")
	fmt.Fprintln(w, "      --normalize-lang      Canonicalize code block languages (py -> python)")
}

func printOutputControlUsage(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
}

func printEnvUsage(w io.Writer) {
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2POST_CONFIG            Config file name or path")
	fmt.Fprintln(w, "  MD2POST_LOCALE            Post locale")
	fmt.Fprintln(w, "  MD2POST_BULLET            Bullet list glyph")
	fmt.Fprintln(w, "  MD2POST_OUTPUT_DIR        Default output directory")
	fmt.Fprintln(w, "  MD2POST_WORKERS           Parallel workers")
	fmt.Fprintln(w, "  A .env file in the working directory is loaded first.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "detect":
		printDetectUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2post version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2post help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
