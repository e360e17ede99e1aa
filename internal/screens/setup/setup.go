package setup

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/mujeeb/quizdev/internal/content"
	"github.com/mujeeb/quizdev/internal/quizgen"
	"github.com/mujeeb/quizdev/internal/router"
	"github.com/mujeeb/quizdev/internal/screen"
	quizscreen "github.com/mujeeb/quizdev/internal/screens/quiz"
	"github.com/mujeeb/quizdev/internal/session"
	"github.com/mujeeb/quizdev/internal/store"
	"github.com/mujeeb/quizdev/internal/ui/components"
	"github.com/mujeeb/quizdev/internal/ui/layout"
)

// step is the wizard position within the setup flow.
type step int

const (
	stepSource step = iota
	stepDocument
	stepSubject
	stepSubfield
	stepTopic
	stepParams
)

// documentLoadedMsg carries the result of extracting an uploaded file.
type documentLoadedMsg struct {
	Doc content.Document
	Err error
}

// SetupScreen collects the quiz parameters before generation. It is
// the application's home screen; finishing the wizard pushes the quiz
// screen.
type SetupScreen struct {
	generator quizgen.Generator
	eventRepo store.EventRepo
	sess      *session.Session

	step    step
	subject content.Descriptor

	sourceMenu   components.Menu
	subjectMenu  components.Menu
	subfieldMenu components.Menu
	pathInput    components.TextInput
	topicInput   components.TextInput

	form   paramsForm
	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup screen. The session is shared across quiz
// rounds so the dedup history survives returning here.
func New(generator quizgen.Generator, eventRepo store.EventRepo, sess *session.Session) *SetupScreen {
	s := &SetupScreen{
		generator: generator,
		eventRepo: eventRepo,
		sess:      sess,
		step:      stepSource,
	}

	s.sourceMenu = components.NewMenu([]components.MenuItem{
		{Label: "UPLOAD DOCUMENT", Action: func() tea.Cmd {
			s.step = stepDocument
			s.pathInput = components.NewTextInput("Path to a PDF or text file...", false, 0)
			return s.pathInput.Init()
		}},
		{Label: "PICK A SUBJECT", Action: func() tea.Cmd {
			s.step = stepSubject
			return nil
		}},
		{Label: "FREE TOPIC", Action: func() tea.Cmd {
			s.step = stepTopic
			s.topicInput = components.NewTextInput("Type any topic...", false, 120)
			return s.topicInput.Init()
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})

	items := make([]components.MenuItem, 0, len(content.Subjects()))
	for _, subj := range content.Subjects() {
		subj := subj
		items = append(items, components.MenuItem{Label: subj, Action: func() tea.Cmd {
			s.openSubfieldMenu(subj)
			return nil
		}})
	}
	s.subjectMenu = components.NewMenu(items)

	return s
}

func (s *SetupScreen) openSubfieldMenu(subject string) {
	items := make([]components.MenuItem, 0, len(content.Subfields(subject)))
	for _, sub := range content.Subfields(subject) {
		sub := sub
		items = append(items, components.MenuItem{Label: sub, Action: func() tea.Cmd {
			s.subject = content.Taxonomy{Subject: subject, Subfield: sub}
			s.enterParams()
			return nil
		}})
	}
	s.subfieldMenu = components.NewMenu(items)
	s.step = stepSubfield
}

func (s *SetupScreen) enterParams() {
	s.form = newParamsForm()
	s.step = stepParams
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	switch s.step {
	case stepDocument, stepTopic:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Back"},
		}
	case stepParams:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Generate"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case documentLoadedMsg:
		if msg.Err != nil {
			s.pathInput.SetError(msg.Err.Error())
			return s, nil
		}
		s.subject = msg.Doc
		s.enterParams()
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s.handleBack()
		}
	}

	switch s.step {
	case stepSource:
		var cmd tea.Cmd
		s.sourceMenu, cmd = s.sourceMenu.Update(msg)
		return s, cmd

	case stepSubject:
		var cmd tea.Cmd
		s.subjectMenu, cmd = s.subjectMenu.Update(msg)
		return s, cmd

	case stepSubfield:
		var cmd tea.Cmd
		s.subfieldMenu, cmd = s.subfieldMenu.Update(msg)
		return s, cmd

	case stepDocument:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			path := strings.TrimSpace(s.pathInput.Value())
			if path == "" {
				s.pathInput.SetError("enter a file path")
				return s, nil
			}
			return s, loadDocument(path)
		}
		var cmd tea.Cmd
		s.pathInput, cmd = s.pathInput.Update(msg)
		return s, cmd

	case stepTopic:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			name := strings.TrimSpace(s.topicInput.Value())
			if name == "" {
				s.topicInput.SetError("enter a topic")
				return s, nil
			}
			s.subject = content.Topic{Name: name}
			s.enterParams()
			return s, nil
		}
		var cmd tea.Cmd
		s.topicInput, cmd = s.topicInput.Update(msg)
		return s, cmd

	case stepParams:
		return s.updateParams(msg)
	}

	return s, nil
}

func (s *SetupScreen) handleBack() (screen.Screen, tea.Cmd) {
	s.errMsg = ""
	switch s.step {
	case stepSubfield:
		s.step = stepSubject
	case stepDocument, stepSubject, stepTopic:
		s.step = stepSource
	case stepParams:
		s.step = stepSource
		s.subject = nil
	}
	return s, nil
}

func (s *SetupScreen) updateParams(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" && s.form.onGenerate() {
		params, err := s.form.params(s.subject)
		if err != nil {
			var invalid *quizgen.InvalidParamsError
			if errors.As(err, &invalid) {
				s.errMsg = fmt.Sprintf("Fix before generating: %s", strings.Join(invalid.Fields, ", "))
			} else {
				s.errMsg = err.Error()
			}
			return s, nil
		}

		s.errMsg = ""
		return s, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: quizscreen.New(s.generator, s.eventRepo, s.sess, params),
			}
		}
	}

	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return s, cmd
}

// loadDocument extracts document text off the update loop.
func loadDocument(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := content.ExtractFile(path)
		return documentLoadedMsg{Doc: doc, Err: err}
	}
}
