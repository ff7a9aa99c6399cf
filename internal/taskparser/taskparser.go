// Package taskparser translates a run-z command line into a taskspec.TaskSpec:
// prerequisites, attributes, trailing arguments, and an action.
package taskparser

import (
	"strings"

	"github.com/go-runz/runz/internal/attrs"
	"github.com/go-runz/runz/internal/taskspec"
)

const argDelimiter = "//"

// Parse tokenizes commandLine and interprets it as either a native opaque
// shell script or a run-z grammar line.
func Parse(commandLine string) (taskspec.TaskSpec, error) {
	tokens := tokenize(commandLine)
	if hasNonWord(tokens) {
		return nativeSpec(), nil
	}
	ws := words(tokens)
	if len(ws) == 0 || ws[0] != "run-z" {
		return nativeSpec(), nil
	}
	return parseGrammar(ws[1:])
}

func nativeSpec() taskspec.TaskSpec {
	return taskspec.TaskSpec{Attrs: attrs.New(), Action: taskspec.Action{Kind: taskspec.ActionScript}}
}

// pendingRef accumulates a TaskRef's raw argument tokens (shorthand args
// and argument-piece content) until it is committed, since classification
// into Args vs Attrs happens only at commit time.
type pendingRef struct {
	name     string
	parallel bool
	raw      []string
}

func parseGrammar(tokens []string) (taskspec.TaskSpec, error) {
	reconstructed := strings.Join(tokens, " ")

	b := taskspec.NewBuilder()

	var pending *pendingRef
	pendingParallel := false
	argsMode := false

	commit := func() {
		if pending == nil {
			return
		}
		args, a := classifyArgs(pending.raw)
		ref := &taskspec.TaskRef{Task: pending.name, Parallel: pending.parallel, Attrs: a, Args: args}
		b.AddPrerequisite(taskspec.Prerequisite{TaskRef: ref})
		pending = nil
	}

	offset := 0
	for i, tok := range tokens {
		tokStart := offset
		offset += len(tok) + 1 // +1 accounts for the joining space

		if strings.HasPrefix(tok, "-") {
			commit()
			b.AddArgs(tokens[i:]...)
			return b.Spec(), nil
		}

		if isPackageSelector(tok) {
			commit()
			b.AddPrerequisite(taskspec.Prerequisite{PackageSelector: &taskspec.PackageSelector{Host: tok}})
			continue
		}

		if name, value, ok := splitAttribute(tok); ok {
			commit()
			b.SetAttr(name, value)
			continue
		}

		if err := processPrerequisiteToken(tok, tokStart, &argsMode, &pendingParallel, &pending, b, commit, reconstructed); err != nil {
			return taskspec.TaskSpec{}, err
		}
	}

	commit()
	return b.Spec(), nil
}

func isPackageSelector(tok string) bool {
	return tok == "." || tok == ".." || strings.HasPrefix(tok, "./") || strings.HasPrefix(tok, "../")
}

// splitAttribute recognizes a token as an attribute assignment: a token
// containing '=' whose first '=' precedes any '/'. The leading-'=' form
// "=name" assigns the empty string to attrs[name].
func splitAttribute(tok string) (name, value string, ok bool) {
	idxEq := strings.IndexByte(tok, '=')
	if idxEq < 0 {
		return "", "", false
	}
	idxSlash := strings.IndexByte(tok, '/')
	if idxSlash >= 0 && idxSlash < idxEq {
		return "", "", false
	}
	prefix, val := tok[:idxEq], tok[idxEq+1:]
	if prefix == "" {
		return val, "", true
	}
	return prefix, val, true
}

// classifyArgs splits a TaskRef's raw accumulated argument tokens: tokens
// beginning with '-' go to args; tokens of the form name=value (with '='
// before any '/') are absorbed into attrs; everything else goes to args.
func classifyArgs(raw []string) ([]string, attrs.Attrs) {
	a := attrs.New()
	var args []string
	for _, tok := range raw {
		if strings.HasPrefix(tok, "-") {
			args = append(args, tok)
			continue
		}
		if name, value, ok := splitAttribute(tok); ok {
			a.Append(name, value)
			continue
		}
		args = append(args, tok)
	}
	return args, a
}

// processPrerequisiteToken handles the "//"-delimited args-mode toggle and,
// within each resulting task-name piece, the ","-delimited fragments and
// "/"-delimited shorthand arguments.
func processPrerequisiteToken(
	tok string,
	tokStart int,
	argsMode *bool,
	pendingParallel *bool,
	pending **pendingRef,
	b *taskspec.Builder,
	commit func(),
	reconstructed string,
) error {
	pieces := strings.Split(tok, argDelimiter)
	pieceOffset := tokStart
	for i, piece := range pieces {
		if i > 0 {
			*argsMode = !*argsMode
			pieceOffset += len(argDelimiter)
		}
		if *argsMode {
			if piece != "" {
				if *pending == nil {
					return &InvalidTask{
						Message:     "Task argument specified, but not the task",
						CommandLine: reconstructed,
						Position:    tokStart,
					}
				}
				(*pending).raw = append((*pending).raw, piece)
			}
		} else {
			if err := processTaskNamePiece(piece, pieceOffset, pendingParallel, pending, b, commit, reconstructed); err != nil {
				return err
			}
		}
		pieceOffset += len(piece)
	}
	return nil
}

// processTaskNamePiece splits piece on ',' into fragments and each
// fragment on '/' into a task name plus shorthand arguments.
func processTaskNamePiece(
	piece string,
	pieceStart int,
	pendingParallel *bool,
	pending **pendingRef,
	b *taskspec.Builder,
	commit func(),
	reconstructed string,
) error {
	fragments := strings.Split(piece, ",")
	fragOffset := pieceStart
	for j, frag := range fragments {
		fromComma := j > 0
		subparts := strings.Split(frag, "/")
		name := subparts[0]
		shorthand := subparts[1:]

		switch {
		case name == "" && len(shorthand) > 0:
			if fromComma {
				return &InvalidTask{
					Message:     "Task argument specified, but not the task",
					CommandLine: reconstructed,
					Position:    fragOffset + 1,
				}
			}
			if *pending == nil {
				return &InvalidTask{
					Message:     "Task argument specified, but not the task",
					CommandLine: reconstructed,
					Position:    fragOffset,
				}
			}
			(*pending).raw = append((*pending).raw, shorthand...)
		case name == "":
			// A bare comma (empty fragment, no shorthand args) closes out
			// whatever task is currently pending and marks the next
			// encountered task name as parallel with it.
			if fromComma {
				commit()
				*pendingParallel = true
			}
		default:
			commit()
			parallel := fromComma || *pendingParallel
			*pendingParallel = false
			*pending = &pendingRef{name: name, parallel: parallel, raw: append([]string{}, shorthand...)}
		}

		fragOffset += len(frag) + 1 // +1 accounts for the consumed comma
	}
	return nil
}
