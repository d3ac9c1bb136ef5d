package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/filedesk/internal/client/tabs"
)

func (a *App) ShowTabs(ctx context.Context) error {
	for _, t := range a.tabs.Tabs() {
		marker := " "
		if a.tabs.IsActive(t.ID) {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %-14s %s\n", marker, t.ID, t.Title)
	}
	return nil
}

func (a *App) SelectTab(ctx context.Context, id string) error {
	if err := a.tabs.Activate(id); err != nil {
		if errors.Is(err, tabs.ErrUnknownTab) {
			fmt.Fprintf(a.out, "Unknown tab: %s (see 'tabs')\n", id)
		}
		return err
	}
	return a.ShowPane(ctx)
}

// ShowPane reprints the output of the active tab.
func (a *App) ShowPane(ctx context.Context) error {
	t := a.tabs.Active()
	text, ok := a.panes[t.ID]
	if !ok {
		fmt.Fprintf(a.out, "[%s] nothing yet\n", t.Title)
		return nil
	}
	fmt.Fprintf(a.out, "[%s]\n%s\n", t.Title, text)
	return nil
}
