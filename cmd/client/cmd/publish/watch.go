// cmd/client/cmd/publish/watch.go
package publish

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"pubdeck/cmd/client/cmd/types"
	"pubdeck/internal/app/client"
)

var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Следить за ходом публикации",
	Long: `Открывает push-канал и печатает живой журнал публикаций вместе со
сменой статуса. Канал переподключается сам при обрывах связи.
Завершение — Ctrl+C.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Снимок нужен до открытия канала: статус публикации приходит
		// только событием, стартовое значение берем из синхронизации
		if _, err := app.SyncAll(ctx); err != nil {
			client.NotifyFromError(err)
			return err
		}

		if err := app.OpenPush(ctx); err != nil {
			client.NotifyFromError(err)
			return err
		}
		defer app.ClosePush()

		fmt.Println("=== Наблюдение за публикацией ===")
		fmt.Println("Для выхода нажмите Ctrl+C")
		fmt.Println()

		g, ctx := errgroup.WithContext(ctx)

		// Хвост консоли публикаций
		g.Go(func() error {
			ticker := time.NewTicker(500 * time.Millisecond)
			defer ticker.Stop()

			seen := 0
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-ticker.C:
					entries := app.Console().Entries()
					for _, e := range entries[seen:] {
						fmt.Print(client.RenderConsole([]client.ConsoleEntry{e}))
					}
					seen = len(entries)
				}
			}
		})

		// Смена статуса публикации
		g.Go(func() error {
			ticker := time.NewTicker(500 * time.Millisecond)
			defer ticker.Stop()

			last := app.Dataset().Publishing()
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-ticker.C:
					current := app.Dataset().Publishing()
					if current != last {
						if current {
							fmt.Println("▶ Публикация запущена")
						} else {
							fmt.Println("■ Публикация остановлена")
						}
						last = current
					}
				}
			}
		})

		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		fmt.Println()
		fmt.Println("Наблюдение завершено")
		return nil
	},
}
