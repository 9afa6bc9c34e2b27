package text

import (
	"github.com/spf13/cobra"
)

// TextCmd - родительская команда для операций с текстами
var TextCmd = &cobra.Command{
	Use:   "text",
	Short: "Управление текстами",
	Long:  `Добавление, редактирование, генерация и просмотр текстов для публикаций.`,
}
