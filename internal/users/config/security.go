package config

// SecurityConfig содержит настройки хэширования паролей.
// Стоимость bcrypt фиксируется конфигурацией и не настраивается на вызов.
type SecurityConfig struct {
	BcryptCost int `yaml:"bcrypt_cost" env:"USERS_BCRYPT_COST" env-default:"10"`
}
