package schedule

import (
	"github.com/spf13/cobra"
)

// ScheduleCmd - родительская команда для планирования публикаций
var ScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Планирование публикаций",
	Long:  `Создание и просмотр отложенных публикаций на страницах, подбор контента.`,
}
