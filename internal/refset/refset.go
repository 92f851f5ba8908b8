// Package refset fetches a reference sequence set from an FTP server for
// the generate-references subcommand, via jlaffaye/ftp — the only external
// collaborator in this repository that talks to a remote service rather
// than a local file.
package refset

import (
	"fmt"
	"io"
	"time"

	"github.com/jlaffaye/ftp"

	"tdscan/internal/seqio"
)

// Source names where a reference FASTA lives on an FTP server.
type Source struct {
	Addr string // host:port
	User string
	Pass string
	Path string
}

// Fetch connects to src.Addr, authenticates, downloads src.Path, and
// decodes it as a sequence group.
func Fetch(src Source) (seqio.Group, error) {
	conn, err := ftp.Dial(src.Addr, ftp.DialWithTimeout(30*time.Second))
	if err != nil {
		return seqio.Group{}, fmt.Errorf("refset: dialing %s: %w", src.Addr, err)
	}
	defer conn.Quit()

	user, pass := src.User, src.Pass
	if user == "" {
		user, pass = "anonymous", "anonymous"
	}
	if err := conn.Login(user, pass); err != nil {
		return seqio.Group{}, fmt.Errorf("refset: login to %s: %w", src.Addr, err)
	}

	resp, err := conn.Retr(src.Path)
	if err != nil {
		return seqio.Group{}, fmt.Errorf("refset: retrieving %s: %w", src.Path, err)
	}
	defer resp.Close()

	return fetchAndDecode(resp)
}

func fetchAndDecode(r io.Reader) (seqio.Group, error) {
	group, err := seqio.Read(r)
	if err != nil {
		return seqio.Group{}, fmt.Errorf("refset: decoding reference set: %w", err)
	}
	return group, nil
}
