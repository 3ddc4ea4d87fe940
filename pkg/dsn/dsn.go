package dsn

import (
	"errors"
	"net"
	"net/url"
	"reflect"
	"regexp"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

var (
	// ErrEmptyDsn defines error returned when no dsn is provided
	ErrEmptyDsn = errors.New("empty string provided for dsn")
	// ErrInvalidDsn defines error returned when the dsn is invalid
	ErrInvalidDsn = errors.New("invalid dsn")
)

// DSN describes how a DSN looks like
type DSN struct {
	Type       string
	Username   string
	Password   string
	Protocol   string
	Address    string
	Host       string
	Port       string
	DataSource string
	Params     map[string]string
}

var (
	// From https://github.com/go-sql-driver/mysql/blob/f4bf8e8e0aa93d4ead0c6473503ca2f5d5eb65a8/utils.go#L34
	regex = regexp.MustCompile(
		`^(?:(?P<Type>.*?)?://)?` + // [type://]
			`(?:(?P<Username>.*?)(?::(?P<Password>.*))?@)?` + // [username[:password]@]
			`(?:(?P<Protocol>[^\(]*)(?:\((?P<Address>[^\)]*)\))?)?` + // [protocol[(address)]]
			`\/(?P<DataSource>.*?)` + // /datasource
			`(?:\?(?P<Params>[^\?]*))?$`) // [?param1=value1]
)

// Parse turns a dsn string into a parsed DSN struct.
func Parse(s string) (*DSN, error) {
	if s == "" {
		return nil, ErrEmptyDsn
	}

	matches := regex.FindStringSubmatch(s)
	if len(matches) < 1 || matches[1] == "" {
		return nil, ErrInvalidDsn
	}

	dsn := &DSN{Params: map[string]string{}}
	names := regex.SubexpNames()
	vof := reflect.ValueOf(dsn).Elem()

	for n, match := range matches[1:] {
		name := names[n+1]
		if name != "Params" {
			vof.FieldByName(name).SetString(match)
			continue
		}

		values, err := url.ParseQuery(match)
		if err != nil {
			return nil, err
		}
		for key, vals := range values {
			dsn.Params[key] = strings.Join(vals, ",")
		}
	}

	// "host:port" without a protocol is captured as the protocol
	if dsn.Protocol != "" && dsn.Address == "" {
		dsn.Address = dsn.Protocol
		dsn.Protocol = ""
	}

	if host, port, err := net.SplitHostPort(dsn.Address); err == nil {
		dsn.Host = host
		dsn.Port = port
	}

	log.WithFields(log.Fields{"type": dsn.Type, "address": dsn.Address}).Debug("parsed dsn")
	return dsn, nil
}

// String converts a DSN struct into its string representation.
func (d DSN) String() string {
	var b strings.Builder

	if d.Type != "" {
		b.WriteString(d.Type + "://")
	}

	if d.Username != "" {
		b.WriteString(d.Username)
		if d.Password != "" {
			b.WriteString(":" + d.Password)
		}
		b.WriteString("@")
	}

	b.WriteString(d.Protocol)
	if d.Address != "" {
		if d.Protocol != "" {
			b.WriteString("(" + d.Address + ")")
		} else {
			b.WriteString(d.Address)
		}
	}

	b.WriteString("/" + d.DataSource)

	if len(d.Params) > 0 {
		keys := make([]string, 0, len(d.Params))
		for key := range d.Params {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		params := make([]string, len(keys))
		for i, key := range keys {
			params[i] = key + "=" + d.Params[key]
		}
		b.WriteString("?" + strings.Join(params, "&"))
	}

	return b.String()
}
