package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
)

var errNoActiveVersion = errors.New("no résumé selected (create one with 'resume new' or pick one with 'resume select')")

// CommandError reports a store command that did not apply.
type CommandError struct {
	Command string
	Result  store.Result
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Command, e.Result)
}

// applied turns a store result into an error for the CLI.
func applied(command string, res store.Result) error {
	if res == store.Applied {
		return nil
	}
	return &CommandError{Command: command, Result: res}
}

// RefError reports an id argument that matched nothing, or more than one thing.
type RefError struct {
	Kind    string
	Ref     string
	Matches int
}

func (e *RefError) Error() string {
	if e.Matches > 1 {
		return fmt.Sprintf("%s %q is ambiguous (%d matches)", e.Kind, e.Ref, e.Matches)
	}
	return fmt.Sprintf("%s %q not found", e.Kind, e.Ref)
}

// matchRef picks the single candidate whose id equals ref, or failing that the single
// candidate whose id starts with ref, so users can type short id prefixes.
func matchRef(kind, ref string, ids []string) (string, error) {
	var prefixed []string
	for _, id := range ids {
		if id == ref {
			return id, nil
		}
		if ref != "" && strings.HasPrefix(id, ref) {
			prefixed = append(prefixed, id)
		}
	}
	if len(prefixed) == 1 {
		return prefixed[0], nil
	}
	return "", &RefError{Kind: kind, Ref: ref, Matches: len(prefixed)}
}

func resolveResume(state *types.State, ref string) (string, error) {
	ids := make([]string, len(state.Resumes))
	for i, r := range state.Resumes {
		ids[i] = r.ID
	}
	return matchRef("resume", ref, ids)
}

func resolveVersion(state *types.State, ref string) (string, error) {
	r, ok := state.FindResume(state.CurrentResumeID)
	if !ok {
		return "", errNoActiveVersion
	}
	ids := make([]string, 0, len(r.Versions))
	for _, v := range r.Versions {
		if v.Name == ref {
			return v.ID, nil
		}
		ids = append(ids, v.ID)
	}
	return matchRef("version", ref, ids)
}

// resolveSection accepts a section id, an id prefix, or a section type when exactly
// one section of that type exists.
func resolveSection(v types.ResumeVersion, ref string) (types.Section, error) {
	ids := make([]string, len(v.Document.Sections))
	var ofType []types.Section
	for i, sec := range v.Document.Sections {
		ids[i] = sec.ID
		if string(sec.Type) == ref {
			ofType = append(ofType, sec)
		}
	}
	id, err := matchRef("section", ref, ids)
	if err != nil {
		if len(ofType) == 1 {
			return ofType[0], nil
		}
		if len(ofType) > 1 {
			return types.Section{}, &RefError{Kind: "section", Ref: ref, Matches: len(ofType)}
		}
		return types.Section{}, err
	}
	for _, sec := range v.Document.Sections {
		if sec.ID == id {
			return sec, nil
		}
	}
	return types.Section{}, &RefError{Kind: "section", Ref: ref}
}

func resolveItem(sec types.Section, ref string) (types.Item, error) {
	ids := make([]string, len(sec.Items))
	for i, it := range sec.Items {
		ids[i] = it.ID
	}
	id, err := matchRef("item", ref, ids)
	if err != nil {
		return types.Item{}, err
	}
	for _, it := range sec.Items {
		if it.ID == id {
			return it, nil
		}
	}
	return types.Item{}, &RefError{Kind: "item", Ref: ref}
}

func resolveField(item types.Item, ref string) (string, error) {
	ids := make([]string, len(item.Fields))
	for i, f := range item.Fields {
		ids[i] = f.ID
	}
	return matchRef("field", ref, ids)
}

// activeVersion returns the selected version or a helpful error.
func (a *app) activeVersion() (types.ResumeVersion, error) {
	v, ok := a.store.ActiveVersion()
	if !ok {
		return types.ResumeVersion{}, errNoActiveVersion
	}
	return v, nil
}

// section resolves a section reference against the active version.
func (a *app) section(ref string) (types.Section, error) {
	v, err := a.activeVersion()
	if err != nil {
		return types.Section{}, err
	}
	return resolveSection(v, ref)
}

// item resolves a section and an item reference against the active version.
func (a *app) item(sectionRef, itemRef string) (types.Section, types.Item, error) {
	sec, err := a.section(sectionRef)
	if err != nil {
		return types.Section{}, types.Item{}, err
	}
	it, err := resolveItem(sec, itemRef)
	if err != nil {
		return types.Section{}, types.Item{}, err
	}
	return sec, it, nil
}

// parseIndex parses a zero-based list position.
func parseIndex(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", name, arg)
	}
	return n, nil
}
