package status

import (
	"cmp"
	"errors"
	"io"
	"slices"
	"time"

	"github.com/bnema/nextlevel-elevator/internal/application"
	"github.com/bnema/nextlevel-elevator/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// elevatorFrame is one shaft as drawn: its open levels and the call that has
// waited longest, if the demand timestamps allow measuring it.
type elevatorFrame struct {
	elevator domain.Elevator
	open     []int
	oldest   *domain.Demand
	wait     time.Duration
}

type frame struct {
	elevators []elevatorFrame
	openCalls int
	// longest points into elevators at the shaft whose oldest call waited most.
	longest *elevatorFrame
}

type frameReadyMsg struct {
	frame frame
}

type model struct {
	statuses []application.ElevatorStatus
	opts     RenderOptions
	styles   styles
	frame    frame
	output   string
}

func newModel(statuses []application.ElevatorStatus, opts RenderOptions) model {
	return model{
		statuses: statuses,
		opts:     opts,
		styles:   newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	statuses, opts := m.statuses, m.opts
	return func() tea.Msg {
		return frameReadyMsg{frame: buildFrame(statuses, opts.Now)}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameReadyMsg:
		m.frame = msg.frame
		m.output = renderView(m.frame, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// buildFrame orders shafts by id and measures waits against now. A zero now
// disables wait measurement.
func buildFrame(statuses []application.ElevatorStatus, now time.Time) frame {
	f := frame{elevators: make([]elevatorFrame, 0, len(statuses))}

	for _, status := range statuses {
		ef := elevatorFrame{elevator: status.Elevator, open: status.OpenLevels()}
		f.openCalls += len(status.OpenDemands)

		if !now.IsZero() {
			for i := range status.OpenDemands {
				demand := status.OpenDemands[i]
				if demand.CreatedAt.IsZero() {
					continue
				}
				if ef.oldest == nil || demand.CreatedAt.Before(ef.oldest.CreatedAt) {
					ef.oldest = &demand
				}
			}
			if ef.oldest != nil {
				ef.wait = max(now.Sub(ef.oldest.CreatedAt), 0)
			}
		}

		f.elevators = append(f.elevators, ef)
	}

	slices.SortStableFunc(f.elevators, func(a, b elevatorFrame) int {
		return cmp.Compare(a.elevator.ID, b.elevator.ID)
	})

	for i := range f.elevators {
		ef := &f.elevators[i]
		if ef.oldest == nil {
			continue
		}
		if f.longest == nil || ef.wait > f.longest.wait {
			f.longest = ef
		}
	}

	return f
}

// Render draws the elevators and their open demands once and returns the frame.
func Render(statuses []application.ElevatorStatus, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(statuses, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
