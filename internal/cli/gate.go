package cli

import (
	"context"
	"fmt"

	"github.com/yunqiwei/licheng/internal/domain"
)

// requireMode fails with the unlock hint when the given mode is still locked.
func requireMode(ctx context.Context, app *App, mode domain.Mode) error {
	unlocked, err := app.History.UnlockedModes(ctx, app.UserID)
	if err != nil {
		return err
	}
	if !unlocked[mode] {
		return fmt.Errorf("%s 尚未解锁：%s", mode.Title(), domain.UnlockHint(mode))
	}
	return nil
}
