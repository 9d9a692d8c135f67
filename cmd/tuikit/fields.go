package main

import (
	"fmt"
	"io"

	"tuikit/internal/config"
	"tuikit/internal/selection"
	"tuikit/internal/ui"
)

// pickerFields are the value fields built from config, in config order.
type pickerFields []*ui.ValueField[string]

// buildFields creates one string-valued field per configured picker. Each
// field owns its selection state for the lifetime of the program.
func buildFields(pickers []config.PickerConfig, observer ui.SessionObserver) pickerFields {
	out := make(pickerFields, 0, len(pickers))
	for i, pc := range pickers {
		options := make([]selection.Candidate[string], len(pc.Options))
		for j, o := range pc.Options {
			options[j] = selection.Candidate[string]{ID: o.ID, Value: o.Value}
		}
		f := ui.NewValueField(fmt.Sprintf("picker-%d", i), pc.Title, selection.NewState(pc.Selected), options)
		f.Observer = observer
		out = append(out, f)
	}
	return out
}

func (p pickerFields) views() []ui.Field {
	views := make([]ui.Field, len(p))
	for i, f := range p {
		views[i] = f
	}
	return views
}

// printSelections writes "title: value" for every field.
func (p pickerFields) printSelections(w io.Writer) {
	for _, f := range p {
		fmt.Fprintf(w, "%s: %s\n", f.Title, f.ValueLabel())
	}
}
