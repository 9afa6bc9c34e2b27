package types

// ClientAppKey — ключ контекста, по которому команды получают
// инициализированное приложение из корневой команды.
const ClientAppKey = "app"
