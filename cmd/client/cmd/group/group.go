package group

import (
	"github.com/spf13/cobra"
)

// GroupCmd - родительская команда для операций с группами
var GroupCmd = &cobra.Command{
	Use:   "group",
	Short: "Управление группами",
	Long:  `Добавление, импорт и просмотр групп для массовой публикации.`,
}
