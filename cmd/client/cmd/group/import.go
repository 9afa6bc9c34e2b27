// cmd/client/cmd/group/import.go
package group

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pubdeck/cmd/client/cmd/types"
	"pubdeck/internal/app/client"
)

var (
	importTags string
	importFile string
)

var ImportCmd = &cobra.Command{
	Use:   "import [url]...",
	Short: "Импортировать группы",
	Long: `Импортирует несколько групп одним запросом. Ссылки передаются
аргументами или построчно из файла через --file. Теги применяются ко
всем импортируемым группам.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		urls := args
		if importFile != "" {
			fromFile, err := readURLs(importFile)
			if err != nil {
				return err
			}
			urls = append(urls, fromFile...)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		groups, err := app.ImportGroups(ctx, urls, importTags)
		if err != nil {
			client.NotifyFromError(err)
			return err
		}

		client.NotifySuccess("Импорт завершен", fmt.Sprintf("всего групп: %d", len(groups)))
		return nil
	},
}

func readURLs(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть файл %s: %w", path, err)
	}
	defer file.Close()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}

	return urls, scanner.Err()
}

func init() {
	ImportCmd.Flags().StringVarP(&importTags, "tags", "t", "", "теги для импортируемых групп")
	ImportCmd.Flags().StringVarP(&importFile, "file", "F", "", "файл со ссылками, по одной на строку")
}
