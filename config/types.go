package config

type config struct {
	Mysql  mysql  `yaml:"mysql" mapstructure:"mysql"`
	Redis  redis  `yaml:"redis" mapstructure:"redis"`
	Server server `yaml:"server" mapstructure:"server"`
	Jwt    jwt    `yaml:"jwt" mapstructure:"jwt"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
}

type server struct {
	Addr        string   `yaml:"addr"`
	CorsOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
}

type jwt struct {
	Secret string `yaml:"secret"`
}
