package main

import (
	"fmt"
	"io"
	"strings"
)

// globExtensions turns "*.yaml,*.yml" into ["yaml", "yml"].
func globExtensions(glob string) []string {
	var exts []string
	for _, g := range strings.Split(glob, ",") {
		g = strings.TrimPrefix(strings.TrimSpace(g), "*.")
		if g != "" {
			exts = append(exts, g)
		}
	}
	return exts
}

// commandNames returns the names of all commands.
func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

// bashFilePattern returns a compgen -X filter keeping only files matching glob.
func bashFilePattern(glob string) string {
	return "!*.@(" + strings.Join(globExtensions(glob), "|") + ")"
}

func generateBash(w io.Writer) error {
	cmds := getCommands()
	convert := cmds[0]

	var b strings.Builder
	b.WriteString("# bash completion for md2epub\n")
	b.WriteString("_md2epub() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    COMPREPLY=()\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")

	// Command position: commands or a markdown file (convert is the default)
	fmt.Fprintf(&b, "    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W %q -- \"$cur\") $(compgen -f -X '%s' -- \"$cur\") )\n",
		strings.Join(commandNames(cmds), " "), bashFilePattern(convert.FilePattern))
	b.WriteString("        return 0\n")
	b.WriteString("    fi\n\n")

	// Fixed arguments of help and completion
	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")
	for _, c := range cmds {
		if len(c.Args) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s) COMPREPLY=( $(compgen -W %q -- \"$cur\") ); return 0 ;;\n",
			c.Name, strings.Join(c.Args, " "))
	}
	b.WriteString("        version) return 0 ;;\n")
	b.WriteString("    esac\n\n")

	// Flag values
	b.WriteString("    case \"$prev\" in\n")
	for _, f := range convert.Flags {
		if f.Type == flagBool {
			continue
		}
		names := "--" + f.Long
		if f.Short != "" {
			names += "|-" + f.Short
		}
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(&b, "        %s) COMPREPLY=( $(compgen -W %q -- \"$cur\") ); return 0 ;;\n",
				names, strings.Join(f.Values, " "))
		case flagFile:
			fmt.Fprintf(&b, "        %s) COMPREPLY=( $(compgen -f -X '%s' -- \"$cur\") $(compgen -d -- \"$cur\") ); return 0 ;;\n",
				names, bashFilePattern(f.FileGlob))
		case flagDir:
			fmt.Fprintf(&b, "        %s) COMPREPLY=( $(compgen -d -- \"$cur\") ); return 0 ;;\n", names)
		default:
			fmt.Fprintf(&b, "        %s) return 0 ;;\n", names)
		}
	}
	b.WriteString("    esac\n\n")

	// Flag names, then markdown files
	var flagNames []string
	for _, f := range convert.Flags {
		flagNames = append(flagNames, "--"+f.Long)
		if f.Short != "" {
			flagNames = append(flagNames, "-"+f.Short)
		}
	}
	b.WriteString("    if [[ \"$cur\" == -* ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(flagNames, " "))
	b.WriteString("        return 0\n")
	b.WriteString("    fi\n\n")
	fmt.Fprintf(&b, "    COMPREPLY=( $(compgen -f -X '%s' -- \"$cur\") $(compgen -d -- \"$cur\") )\n",
		bashFilePattern(convert.FilePattern))
	b.WriteString("}\n\n")
	b.WriteString("shopt -s extglob\n")
	b.WriteString("complete -o filenames -F _md2epub md2epub\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

// zshEscape escapes text for a single-quoted _arguments spec.
func zshEscape(s string) string {
	r := strings.NewReplacer(`'`, `'\''`, `[`, `\[`, `]`, `\]`, `:`, `\:`)
	return r.Replace(s)
}

// zshAction returns the value part of an _arguments spec.
func zshAction(f flagDef) string {
	switch f.Type {
	case flagBool:
		return ""
	case flagEnum:
		return ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		return ":file:_files -g \"*.(" + strings.Join(globExtensions(f.FileGlob), "|") + ")\""
	case flagDir:
		return ":directory:_files -/"
	default:
		return ":" + f.Long + ":"
	}
}

func generateZsh(w io.Writer) error {
	cmds := getCommands()
	convert := cmds[0]

	var b strings.Builder
	b.WriteString("#compdef md2epub\n\n")
	b.WriteString("_md2epub() {\n")
	b.WriteString("  local -a commands\n")
	b.WriteString("  commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "    '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("  )\n\n")

	mdGlob := "\"*.(" + strings.Join(globExtensions(convert.FilePattern), "|") + ")\""
	b.WriteString("  if (( CURRENT == 2 )); then\n")
	b.WriteString("    _describe 'command' commands\n")
	fmt.Fprintf(&b, "    _files -g %s\n", mdGlob)
	b.WriteString("    return\n")
	b.WriteString("  fi\n\n")

	b.WriteString("  case $words[2] in\n")
	for _, c := range cmds {
		if len(c.Args) == 0 {
			continue
		}
		fmt.Fprintf(&b, "    %s) _values '%s' %s ;;\n", c.Name, c.Name, strings.Join(c.Args, " "))
	}
	b.WriteString("    version) ;;\n")
	b.WriteString("    *)\n")
	b.WriteString("      _arguments -s \\\n")
	for _, f := range convert.Flags {
		desc := "[" + zshEscape(f.Desc) + "]"
		if f.Short != "" {
			fmt.Fprintf(&b, "        '(-%s --%s)'{-%s,--%s}'%s%s' \\\n",
				f.Short, f.Long, f.Short, f.Long, desc, zshAction(f))
		} else {
			fmt.Fprintf(&b, "        '--%s%s%s' \\\n", f.Long, desc, zshAction(f))
		}
	}
	fmt.Fprintf(&b, "        '*:markdown file:_files -g %s'\n", mdGlob)
	b.WriteString("      ;;\n")
	b.WriteString("  esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _md2epub md2epub\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

// fishQuote returns s as a fish single-quoted string.
func fishQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}

func generateFish(w io.Writer) error {
	cmds := getCommands()
	convert := cmds[0]
	others := strings.Join(commandNames(cmds[1:]), " ")

	var b strings.Builder
	b.WriteString("# fish completion for md2epub\n")
	b.WriteString("complete -c md2epub -f\n\n")

	// Commands
	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c md2epub -n '__fish_use_subcommand' -a %s -d %s\n", c.Name, fishQuote(c.Desc))
	}
	b.WriteString("\n")

	// Fixed arguments of help and completion
	for _, c := range cmds {
		if len(c.Args) == 0 {
			continue
		}
		fmt.Fprintf(&b, "complete -c md2epub -n '__fish_seen_subcommand_from %s' -a %s\n",
			c.Name, fishQuote(strings.Join(c.Args, " ")))
	}
	b.WriteString("\n")

	// Convert flags, also valid without the convert command name
	cond := fishQuote("not __fish_seen_subcommand_from " + others)
	for _, f := range convert.Flags {
		line := "complete -c md2epub -n " + cond + " -l " + f.Long
		if f.Short != "" {
			line += " -s " + f.Short
		}
		switch f.Type {
		case flagBool:
		case flagEnum:
			line += " -x -a " + fishQuote(strings.Join(f.Values, " "))
		case flagFile:
			line += " -r -F"
		case flagDir:
			line += " -x -a '(__fish_complete_directories)'"
		default:
			line += " -x"
		}
		line += " -d " + fishQuote(f.Desc)
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	// Markdown files
	for _, ext := range globExtensions(convert.FilePattern) {
		fmt.Fprintf(&b, "complete -c md2epub -n %s -k -a '(__fish_complete_suffix .%s)'\n", cond, ext)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
