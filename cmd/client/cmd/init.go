// cmd/client/cmd/init.go
package cmd

import (
	"pubdeck/cmd/client/cmd/auth"
	"pubdeck/cmd/client/cmd/group"
	"pubdeck/cmd/client/cmd/image"
	"pubdeck/cmd/client/cmd/page"
	"pubdeck/cmd/client/cmd/publish"
	"pubdeck/cmd/client/cmd/schedule"
	"pubdeck/cmd/client/cmd/sync"
	"pubdeck/cmd/client/cmd/text"
)

func init() {
	// Команды аутентификации
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.WhoamiCmd)

	// Команды работы с текстами
	rootCmd.AddCommand(text.TextCmd)
	text.TextCmd.AddCommand(text.AddCmd)
	text.TextCmd.AddCommand(text.EditCmd)
	text.TextCmd.AddCommand(text.GenerateCmd)
	text.TextCmd.AddCommand(text.ListCmd)

	// Команды работы с изображениями
	rootCmd.AddCommand(image.ImageCmd)
	image.ImageCmd.AddCommand(image.UploadCmd)
	image.ImageCmd.AddCommand(image.ListCmd)

	// Команды работы с группами
	rootCmd.AddCommand(group.GroupCmd)
	group.GroupCmd.AddCommand(group.AddCmd)
	group.GroupCmd.AddCommand(group.ImportCmd)
	group.GroupCmd.AddCommand(group.ListCmd)

	// Команды работы со страницами
	rootCmd.AddCommand(page.PageCmd)
	page.PageCmd.AddCommand(page.AddCmd)
	page.PageCmd.AddCommand(page.ListCmd)

	// Команды планирования публикаций
	rootCmd.AddCommand(schedule.ScheduleCmd)
	schedule.ScheduleCmd.AddCommand(schedule.AddCmd)
	schedule.ScheduleCmd.AddCommand(schedule.SuggestCmd)
	schedule.ScheduleCmd.AddCommand(schedule.ListCmd)

	// Команды массовой публикации
	rootCmd.AddCommand(publish.PublishCmd)
	publish.PublishCmd.AddCommand(publish.StartCmd)
	publish.PublishCmd.AddCommand(publish.StopCmd)
	publish.PublishCmd.AddCommand(publish.WatchCmd)

	rootCmd.AddCommand(sync.SyncCmd)
}
