package kvdb

type Conf struct {
	Type string `json:"type"`
	Addr string `json:"addr"`
	PW   string `json:"pw"`
	DB   int    `json:"db"` // optional db number e.g. redis
}
