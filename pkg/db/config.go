package db

type Config struct {
	// Path is the sqlite database file, or a file: URI in tests.
	Path string
	// BusyTimeoutMS bounds how long a write waits on a locked database.
	BusyTimeoutMS int
}
