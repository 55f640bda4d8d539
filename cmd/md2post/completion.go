package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2post/internal/richtext"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// programName is the executable name completions are registered for.
const programName = "md2post"

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	TakesFiles  bool   // accepts file arguments
	FilePattern string // glob for file arguments (e.g., "*.md")
	Args        []string
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"locale": {Values: richtext.Locales},
	"config": {FileGlob: "*.yaml,*.yml"},
	"output": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:        "convert",
			Desc:        "Convert markdown files to rich-text post JSON",
			Flags:       extractFlagsFromFlagSet(newConvertFlagSet(&convertFlags{})),
			TakesFiles:  true,
			FilePattern: "*.md,*.markdown",
		},
		{
			Name:        "preview",
			Desc:        "Print a post as wrapped plain text",
			Flags:       extractFlagsFromFlagSet(newPreviewFlagSet(&previewFlags{})),
			TakesFiles:  true,
			FilePattern: "*.md,*.markdown",
		},
		{
			Name:       "detect",
			Desc:       "Report whether input looks like markdown",
			TakesFiles: true,
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: []string{string(ShellBash), string(ShellZsh), string(ShellFish)},
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
			Args: commands,
		},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = generateBash(getCommands())
	case ShellZsh:
		script = generateZsh(getCommands())
	case ShellFish:
		script = generateFish(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, script)
	return err
}

// splitGlob splits a comma-separated glob list.
func splitGlob(glob string) []string {
	if glob == "" {
		return nil
	}
	return strings.Split(glob, ",")
}

func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

func generateBash(cmds []commandDef) string {
	var sb strings.Builder
	fn := "_" + programName + "_completions"

	fmt.Fprintf(&sb, "# bash completion for %s\n", programName)
	fmt.Fprintf(&sb, "%s() {\n", fn)
	sb.WriteString("    local cur prev cmd\n")
	sb.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	sb.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	sb.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&sb, "        COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", strings.Join(commandNames(cmds), " "))
	sb.WriteString("        return\n")
	sb.WriteString("    fi\n\n")
	sb.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n")
	sb.WriteString("    case \"${cmd}\" in\n")

	for _, c := range cmds {
		fmt.Fprintf(&sb, "        %s)\n", c.Name)

		var words []string
		var valued []flagDef
		for _, f := range c.Flags {
			words = append(words, "--"+f.Long)
			if f.Short != "" {
				words = append(words, "-"+f.Short)
			}
			if f.Type == flagEnum || f.Type == flagFile || f.Type == flagDir {
				valued = append(valued, f)
			}
		}

		if len(valued) > 0 {
			sb.WriteString("            case \"${prev}\" in\n")
			for _, f := range valued {
				pattern := "--" + f.Long
				if f.Short != "" {
					pattern = "-" + f.Short + "|" + pattern
				}
				fmt.Fprintf(&sb, "                %s)\n", pattern)
				fmt.Fprintf(&sb, "                    COMPREPLY=(%s)\n", bashValueCompletion(f))
				sb.WriteString("                    return\n")
				sb.WriteString("                    ;;\n")
			}
			sb.WriteString("            esac\n")
		}

		switch {
		case len(words) > 0:
			sb.WriteString("            if [[ \"${cur}\" == -* ]]; then\n")
			fmt.Fprintf(&sb, "                COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", strings.Join(words, " "))
			if c.TakesFiles {
				sb.WriteString("            else\n")
				fmt.Fprintf(&sb, "                COMPREPLY=(%s)\n", bashFileCompletion(c.FilePattern))
			}
			sb.WriteString("            fi\n")
		case len(c.Args) > 0:
			fmt.Fprintf(&sb, "            COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", strings.Join(c.Args, " "))
		case c.TakesFiles:
			fmt.Fprintf(&sb, "            COMPREPLY=(%s)\n", bashFileCompletion(c.FilePattern))
		}
		sb.WriteString("            ;;\n")
	}

	sb.WriteString("    esac\n")
	sb.WriteString("}\n")
	fmt.Fprintf(&sb, "complete -F %s %s\n", fn, programName)
	return sb.String()
}

func bashValueCompletion(f flagDef) string {
	switch f.Type {
	case flagEnum:
		return fmt.Sprintf("$(compgen -W %q -- \"${cur}\")", strings.Join(f.Values, " "))
	case flagDir:
		return "$(compgen -d -- \"${cur}\")"
	default:
		return bashFileCompletion(f.FileGlob)
	}
}

func bashFileCompletion(glob string) string {
	patterns := splitGlob(glob)
	if len(patterns) == 0 {
		return "$(compgen -f -- \"${cur}\")"
	}
	return fmt.Sprintf("$(compgen -f -X '!@(%s)' -- \"${cur}\") $(compgen -d -- \"${cur}\")", strings.Join(patterns, "|"))
}

func generateZsh(cmds []commandDef) string {
	var sb strings.Builder
	fn := "_" + programName

	fmt.Fprintf(&sb, "#compdef %s\n\n", programName)
	fmt.Fprintf(&sb, "%s() {\n", fn)
	sb.WriteString("    local -a commands\n")
	sb.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&sb, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	sb.WriteString("    )\n\n")
	sb.WriteString("    if (( CURRENT == 2 )); then\n")
	sb.WriteString("        _describe 'command' commands\n")
	sb.WriteString("        return\n")
	sb.WriteString("    fi\n\n")
	sb.WriteString("    case \"${words[2]}\" in\n")

	for _, c := range cmds {
		fmt.Fprintf(&sb, "        %s)\n", c.Name)
		switch {
		case len(c.Flags) > 0 || c.TakesFiles:
			sb.WriteString("            shift words\n")
			sb.WriteString("            (( CURRENT-- ))\n")
			sb.WriteString("            _arguments")
			for _, f := range c.Flags {
				fmt.Fprintf(&sb, " \\\n                %s", zshFlagSpec(f))
			}
			if c.TakesFiles {
				fmt.Fprintf(&sb, " \\\n                '*:input:%s'", zshFileAction(c.FilePattern))
			}
			sb.WriteString("\n")
		case len(c.Args) > 0:
			fmt.Fprintf(&sb, "            _values '%s' %s\n", c.Name, strings.Join(c.Args, " "))
		}
		sb.WriteString("            ;;\n")
	}

	sb.WriteString("    esac\n")
	sb.WriteString("}\n\n")
	fmt.Fprintf(&sb, "%s \"$@\"\n", fn)
	return sb.String()
}

func zshFlagSpec(f flagDef) string {
	desc := zshEscape(f.Desc)

	var action string
	switch f.Type {
	case flagBool:
	case flagEnum:
		action = ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		action = ":file:" + zshFileAction(f.FileGlob)
	case flagDir:
		action = ":directory:_files -/"
	default:
		action = ":" + f.Long + ":"
	}

	if f.Short == "" {
		return fmt.Sprintf("'--%s[%s]%s'", f.Long, desc, action)
	}
	return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
}

func zshFileAction(glob string) string {
	patterns := splitGlob(glob)
	if len(patterns) == 0 {
		return "_files"
	}
	return fmt.Sprintf("_files -g \"%s\"", strings.Join(patterns, " "))
}

// zshEscape escapes characters with meaning inside _arguments specs.
func zshEscape(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)
	return r.Replace(s)
}

func generateFish(cmds []commandDef) string {
	var sb strings.Builder
	needs := "__fish_" + programName + "_needs_command"
	using := "__fish_" + programName + "_using_command"

	fmt.Fprintf(&sb, "# fish completion for %s\n\n", programName)
	fmt.Fprintf(&sb, "function %s\n", needs)
	sb.WriteString("    set -l cmd (commandline -opc)\n")
	sb.WriteString("    test (count $cmd) -eq 1\n")
	sb.WriteString("end\n\n")
	fmt.Fprintf(&sb, "function %s\n", using)
	sb.WriteString("    set -l cmd (commandline -opc)\n")
	sb.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	sb.WriteString("end\n\n")
	fmt.Fprintf(&sb, "complete -c %s -f\n", programName)

	for _, c := range cmds {
		fmt.Fprintf(&sb, "complete -c %s -n %s -a %s -d '%s'\n", programName, needs, c.Name, fishEscape(c.Desc))
	}

	for _, c := range cmds {
		cond := fmt.Sprintf("'%s %s'", using, c.Name)
		for _, f := range c.Flags {
			var line strings.Builder
			fmt.Fprintf(&line, "complete -c %s -n %s", programName, cond)
			if f.Short != "" {
				fmt.Fprintf(&line, " -s %s", f.Short)
			}
			fmt.Fprintf(&line, " -l %s -d '%s'", f.Long, fishEscape(f.Desc))
			switch f.Type {
			case flagBool:
			case flagEnum:
				fmt.Fprintf(&line, " -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				line.WriteString(" -r -F")
			case flagDir:
				line.WriteString(" -x -a '(__fish_complete_directories)'")
			default:
				line.WriteString(" -x")
			}
			sb.WriteString(line.String())
			sb.WriteByte('\n')
		}
		if c.TakesFiles {
			fmt.Fprintf(&sb, "complete -c %s -n %s -F\n", programName, cond)
		}
		if len(c.Args) > 0 {
			fmt.Fprintf(&sb, "complete -c %s -n %s -a '%s'\n", programName, cond, strings.Join(c.Args, " "))
		}
	}

	return sb.String()
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2post completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(md2post completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(md2post completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    md2post completion fish > ~/.config/fish/completions/md2post.fish")
}
