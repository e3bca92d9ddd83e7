package sqldb

type Conf struct {
	Type string `json:"type"` // pgsql, sqlite, mysql
	Host string `json:"host"`
	Port int    `json:"port"`
	User string `json:"user"`
	PW   string `json:"pw"`
	DB   string `json:"db"`
	Path string `json:"path"` // database file path for embedded engines
	DSN  string `json:"dsn"`  // To Overwrite Default DSN
}
