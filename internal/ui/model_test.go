package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flavono123/schemabuilder/internal/config"
	"github.com/flavono123/schemabuilder/internal/schema"
	"github.com/flavono123/schemabuilder/internal/ui/draft"
	"github.com/flavono123/schemabuilder/internal/ui/event"
	"github.com/flavono123/schemabuilder/internal/ui/picker"
)

func sequentialIDs() schema.IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("f%d", n)
	}
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

var _ = Describe("Model", func() {
	var m *Model

	send := func(msg tea.Msg) tea.Cmd {
		_, cmd := m.Update(msg)
		return cmd
	}

	status := func(cmd tea.Cmd) event.SetStatusMsg {
		msgs := collect(cmd)
		Expect(msgs).To(HaveLen(1))
		Expect(msgs[0]).To(BeAssignableToTypeOf(event.SetStatusMsg{}))
		return msgs[0].(event.SetStatusMsg)
	}

	BeforeEach(func() {
		cfg := &config.Config{Format: config.FormatJSON, Indent: 2}
		m = InitModel(cfg, schema.WithIDFunc(sequentialIDs()))
	})

	It("should start with an empty schema", func() {
		Expect(m.Forest()).To(BeEmpty())
		Expect(m.preview.Content()).To(Equal("{}"))
	})

	Describe("Intents", func() {
		It("should add a top-level field and select it", func() {
			s := status(send(event.AddFieldMsg{Name: "age", Kind: schema.Number, Required: true}))

			Expect(s.Status).To(Equal(event.Info))
			Expect(m.Forest()).To(Equal(schema.Forest{
				{ID: "f1", Name: "age", Kind: schema.Number, Required: true},
			}))
			field, ok := m.builder.Current()
			Expect(ok).To(BeTrue())
			Expect(field.ID).To(Equal("f1"))
			Expect(m.preview.Content()).To(Equal("{\n  \"age\": \"Number\"\n}"))
		})

		It("should add a child and render it as an empty string", func() {
			send(event.AddFieldMsg{Name: "addr", Kind: schema.Nested})
			Expect(m.preview.Content()).To(Equal("{\n  \"addr\": {}\n}"))

			Expect(collect(send(event.AddChildMsg{ParentID: "f1"}))).To(BeEmpty())
			send(event.UpdateFieldMsg{ID: "f2", Changes: schema.Changes{}.WithName("city")})

			field, _ := m.builder.Current()
			Expect(field.ID).To(Equal("f2"))
			Expect(m.preview.Content()).To(Equal("{\n  \"addr\": {\n    \"city\": \"\"\n  }\n}"))
		})

		It("should reject a child under a primitive field", func() {
			send(event.AddFieldMsg{Name: "age", Kind: schema.Number})

			s := status(send(event.AddChildMsg{ParentID: "f1"}))
			Expect(s.Status).To(Equal(event.Error))
			Expect(s.Message).To(ContainSubstring(schema.ErrNotNested.Error()))
			Expect(m.Forest()[0].Children).To(BeNil())
		})

		It("should reject updates of unknown fields", func() {
			s := status(send(event.UpdateFieldMsg{ID: "nope", Changes: schema.Changes{}.WithName("x")}))

			Expect(s.Status).To(Equal(event.Error))
			Expect(m.Forest()).To(BeEmpty())
		})

		It("should drop rename updates that arrive after a newer one", func() {
			send(event.AddFieldMsg{Name: "city", Kind: schema.String})

			send(event.UpdateFieldMsg{ID: "f1", Changes: schema.Changes{}.WithName("city"), Seq: 3})
			send(event.UpdateFieldMsg{ID: "f1", Changes: schema.Changes{}.WithName("cityxy"), Seq: 2})
			send(event.UpdateFieldMsg{ID: "f1", Changes: schema.Changes{}.WithName("cityx"), Seq: 1})
			Expect(m.Forest()[0].Name).To(Equal("city"))

			send(event.UpdateFieldMsg{ID: "f1", Changes: schema.Changes{}.WithRequired(true)})
			Expect(m.Forest()[0].Required).To(BeTrue())

			send(event.UpdateFieldMsg{ID: "f1", Changes: schema.Changes{}.WithName("town"), Seq: 4})
			Expect(m.Forest()[0].Name).To(Equal("town"))
		})

		It("should change the kind of a field from the picker", func() {
			send(event.AddFieldMsg{Name: "addr", Kind: schema.String})

			send(event.PickKindMsg{Target: "f1", Kind: schema.Nested})
			Expect(m.Forest()[0].Kind).To(Equal(schema.Nested))
			Expect(m.Forest()[0].Children).To(Equal(schema.Forest{}))
		})

		It("should hand a kind without target to the draft", func() {
			send(draft.ShowMsg{})
			send(event.PickKindMsg{Kind: schema.Boolean})

			Expect(m.draft.Draft().Kind).To(Equal(schema.Boolean))
			Expect(m.Forest()).To(BeEmpty())
		})

		It("should delete a field", func() {
			send(event.AddFieldMsg{Name: "a", Kind: schema.String})
			send(event.AddFieldMsg{Name: "b", Kind: schema.String})
			send(event.AddFieldMsg{Name: "c", Kind: schema.String})

			send(event.DeleteFieldMsg{ID: "f2"})
			Expect(m.Forest().IDs()).To(Equal([]string{"f1", "f3"}))
			Expect(m.preview.Content()).To(Equal("{\n  \"a\": \"String\",\n  \"c\": \"String\"\n}"))
		})
	})

	Describe("Overlays", func() {
		It("should open the draft", func() {
			Expect(collect(send(event.OpenDraftMsg{}))).To(Equal([]tea.Msg{draft.ShowMsg{}}))

			send(draft.ShowMsg{})
			Expect(m.draft.Visible()).To(BeTrue())
			Expect(m.View()).To(ContainSubstring("New field"))
		})

		It("should route keys to the picker first", func() {
			send(draft.ShowMsg{})
			send(picker.ShowMsg{Target: ""})

			msgs := collect(send(tea.KeyMsg{Type: tea.KeyEsc}))
			Expect(msgs).To(Equal([]tea.Msg{picker.HideMsg{}}))

			send(picker.HideMsg{})
			Expect(m.picker.Visible()).To(BeFalse())
			Expect(m.draft.Visible()).To(BeTrue())
		})
	})

	Describe("Keys", func() {
		It("should quit on ctrl+c", func() {
			Expect(collect(send(tea.KeyMsg{Type: tea.KeyCtrlC}))).To(Equal([]tea.Msg{tea.QuitMsg{}}))
		})

		It("should switch focus with tab", func() {
			send(tea.KeyMsg{Type: tea.KeyTab})
			Expect(m.state).To(Equal(previewView))

			send(tea.KeyMsg{Type: tea.KeyTab})
			Expect(m.state).To(Equal(builderView))
		})

		It("should send keys to the focused pane", func() {
			send(event.AddFieldMsg{Name: "a", Kind: schema.String})

			msgs := collect(send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}))
			Expect(msgs).To(Equal([]tea.Msg{event.DeleteFieldMsg{ID: "f1"}}))

			send(tea.KeyMsg{Type: tea.KeyTab})
			Expect(collect(send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}))).To(BeEmpty())
		})

		It("should submit with ctrl+s", func() {
			send(event.AddFieldMsg{Name: "a", Kind: schema.String})

			s := status(send(tea.KeyMsg{Type: tea.KeyCtrlS}))
			Expect(s.Message).To(Equal("submitted 1 fields"))
			Expect(m.Submitted()).To(BeTrue())

			out, err := m.JSON()
			Expect(err).NotTo(HaveOccurred())
			Expect(string(out)).To(Equal("{\n  \"a\": \"String\"\n}"))
		})
	})

	Describe("Status", func() {
		It("should show and hide a status line", func() {
			send(event.SetStatusMsg{Message: "hello", Status: event.Warn})
			Expect(m.statusView()).To(ContainSubstring("hello"))

			send(event.HideStatusMsg{})
			Expect(m.statusView()).To(BeEmpty())
		})
	})
})
