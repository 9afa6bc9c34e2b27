package page

import (
	"github.com/spf13/cobra"
)

// PageCmd - родительская команда для операций со страницами
var PageCmd = &cobra.Command{
	Use:   "page",
	Short: "Управление страницами",
	Long:  `Добавление и просмотр страниц для отложенных публикаций.`,
}
