package source

import (
	"fmt"
	"strings"
)

// Option describes where a source table is loaded from: a CSV file, or a query
// against a SQL database.
type Option struct {
	CSV string `toml:"csv"`

	Driver   string `toml:"driver"` // mysql, sqlite3 or pgx
	DSN      string `toml:"dsn"`
	Addr     string `toml:"addr"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	DB       string `toml:"db"`
	Query    string `toml:"query"`
}

// IsSQL reports whether the option points at a database rather than a file.
func (opt Option) IsSQL() bool {
	return opt.CSV == "" && (opt.Driver != "" || opt.DSN != "" || opt.Addr != "")
}

// DataSourceName returns DSN, or builds a mysql one from the address fields.
func (opt Option) DataSourceName() string {
	if opt.DSN != "" {
		return opt.DSN
	}
	if driver := opt.driver(); driver != "mysql" {
		return ""
	}
	addr, port := opt.Addr, opt.Port
	if addr == "" {
		addr = "127.0.0.1"
	}
	if port == 0 {
		port = 4000
	}
	if opt.Password == "" {
		return fmt.Sprintf("%s@tcp(%s:%v)/%v", opt.User, addr, port, opt.DB)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%v)/%v", opt.User, opt.Password, addr, port, opt.DB)
}

func (opt Option) driver() string {
	switch d := strings.ToLower(opt.Driver); d {
	case "":
		return "mysql"
	case "postgres", "postgresql", "pg":
		return "pgx"
	case "sqlite":
		return "sqlite3"
	default:
		return d
	}
}
