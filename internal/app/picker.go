package app

import (
	"fmt"
	"iter"

	"github.com/atomicstack/combopick/internal/logging/events"
	"github.com/atomicstack/combopick/internal/source"
	"github.com/atomicstack/combopick/pkg/combobox"
	"github.com/atomicstack/combopick/pkg/imtui"
)

type continentValue = combobox.ParseDisplay[source.Continent]

// picker is the single-field program behind combopick. The bound value's
// type depends on the source, so the field is reached through closures set
// up by bind.
type picker struct {
	cfg        Config
	kind       source.Kind
	socket     string
	box        *combobox.ComboBox
	candidates []string

	show    func(ui *imtui.Ui) imtui.Response
	current func() (string, bool)

	started bool
	status  string
	result  Result
	done    bool
	err     error
}

func newPicker(cfg Config) (*picker, error) {
	kind, err := source.ParseKind(cfg.Source)
	if err != nil {
		return nil, err
	}
	p := &picker{
		cfg:  cfg,
		kind: kind,
		box: combobox.New("combopick",
			combobox.WithLabel(cfg.Label),
			combobox.WithWidth(cfg.Width),
			combobox.WithMaxRows(cfg.MaxRows),
		),
	}
	if kind == source.KindContinents {
		for _, c := range source.Continents() {
			p.candidates = append(p.candidates, c.String())
		}
		if err := p.bindContinents(); err != nil {
			return nil, err
		}
		events.App.Source(string(kind), len(p.candidates))
		return p, nil
	}

	entries, err := p.loadEntries()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 && !cfg.Custom {
		return nil, fmt.Errorf("%w from %s source", ErrNoCandidates, kind)
	}
	for _, e := range entries {
		p.candidates = append(p.candidates, e.Name)
	}
	p.bindEntries(entries)
	return p, nil
}

func (p *picker) loadEntries() ([]source.Entry, error) {
	switch p.kind {
	case source.KindStatic:
		events.App.Source(string(p.kind), len(p.cfg.Options))
		return source.Named(p.cfg.Options...), nil
	case source.KindFile:
		names, err := source.ReadFile(p.cfg.OptionsFile)
		if err != nil {
			return nil, err
		}
		events.App.Source(string(p.kind), len(names))
		return source.Named(names...), nil
	case source.KindTmux:
		socket, err := source.ResolveSocketPath(p.cfg.SocketPath)
		if err != nil {
			return nil, fmt.Errorf("resolve socket path: %w", err)
		}
		p.socket = socket
		return listSessions(socket)
	}
	return nil, fmt.Errorf("%w %q", source.ErrUnknownSource, p.kind)
}

// bind attaches the combo box to a value of type V offered through options.
// describe reports the committed text and whether it was custom.
func bind[V combobox.Value, O combobox.Option[V]](p *picker, initial V, options func() iter.Seq[O], describe func(V) (string, bool)) {
	value := initial
	p.show = func(ui *imtui.Ui) imtui.Response {
		return combobox.Show(ui, p.box, &value, options())
	}
	p.current = func() (string, bool) { return describe(value) }
}

func describeCustom[V combobox.Value](name func(V) string) func(combobox.CustomValue[V]) (string, bool) {
	return func(c combobox.CustomValue[V]) (string, bool) {
		if text, ok := c.CustomText(); ok {
			return text, true
		}
		v, _ := c.Value()
		return name(v), false
	}
}

func (p *picker) bindEntries(entries []source.Entry) {
	initial, found := source.Find(entries, p.cfg.Initial)
	if !found && p.cfg.Initial != "" {
		initial = source.Entry{Name: p.cfg.Initial}
	}
	name := func(e source.Entry) string { return e.Name }
	if !p.cfg.Custom {
		bind(p, initial,
			func() iter.Seq[source.Entry] { return source.Seq(entries) },
			func(e source.Entry) (string, bool) { return e.Name, false })
		return
	}
	value := combobox.Selected(initial)
	if !found && p.cfg.Initial != "" {
		value = combobox.Custom[source.Entry](p.cfg.Initial)
	}
	bind(p, value,
		func() iter.Seq[combobox.CustomOption[source.Entry, source.Entry]] {
			return combobox.WithCustom[source.Entry](source.Seq(entries))
		},
		describeCustom(name))
}

func (p *picker) bindContinents() error {
	options := func() iter.Seq[continentValue] {
		return combobox.Displays(source.Continents()...)
	}
	var initial continentValue
	var parseErr error
	if p.cfg.Initial != "" {
		initial, parseErr = combobox.ParseText(p.cfg.Initial, source.ParseContinent)
	}
	name := func(v continentValue) string { return v.String() }
	if !p.cfg.Custom {
		if parseErr != nil {
			return fmt.Errorf("initial value: %w", parseErr)
		}
		bind(p, initial, options, func(v continentValue) (string, bool) { return name(v), false })
		return nil
	}
	value := combobox.Selected(initial)
	if parseErr != nil {
		value = combobox.Custom[continentValue](p.cfg.Initial)
	}
	bind(p, value,
		func() iter.Seq[combobox.CustomOption[continentValue, continentValue]] {
			return combobox.WithCustom[continentValue](options())
		},
		describeCustom(name))
	return nil
}

func (p *picker) draw(ui *imtui.Ui) {
	keys := ui.Keys()
	if !p.started {
		p.started = true
		ui.RequestFocus(p.box.ID())
	}
	if p.cfg.Title != "" {
		ui.Heading(p.cfg.Title)
	}

	resp := p.show(ui)
	if resp.Changed() {
		text, custom := p.current()
		p.status = p.statusFor(text, custom)
		if p.cfg.Submit {
			p.finish(ui)
		}
	}

	switch {
	case ui.KeyPressed(keys.Quit):
		p.err = ErrAborted
		events.App.Abort("interrupt")
		ui.Quit()
	case ui.KeyPressed(keys.Blur) && !resp.HasFocus && !resp.LostFocus:
		// Esc on an unfocused field means the user is done.
		p.finish(ui)
	}

	ui.Space()
	if p.status != "" {
		ui.Status(p.status)
	}
	if p.cfg.HelpLine {
		ui.HelpLine()
	}
}

func (p *picker) statusFor(text string, custom bool) string {
	if !custom {
		return "selected " + text
	}
	if hint, ok := source.Closest(text, p.candidates); ok {
		return fmt.Sprintf("custom value %q (closest: %s)", text, hint)
	}
	return fmt.Sprintf("custom value %q", text)
}

func (p *picker) finish(ui *imtui.Ui) {
	text, custom := p.current()
	p.result = Result{Value: text, Custom: custom, Source: string(p.kind)}
	p.done = true
	events.App.Finish(text, custom)
	ui.Quit()
}
