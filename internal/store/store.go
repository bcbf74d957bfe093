// Package store loads and saves trees in the codec text format on an
// afero filesystem, transcoding between UTF-8 and the configured charset.
package store

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/katalvlaran/bintree/codec"
	"github.com/katalvlaran/bintree/core"
)

// ErrUnknownCharset is returned by New for an unrecognised encoding name.
var ErrUnknownCharset = errors.New("store: unknown charset")

// Store reads and writes tree files.
type Store struct {
	fs      afero.Fs
	charset string
	enc     encoding.Encoding
}

// New returns a Store on fs using the WHATWG encoding named by charset
// ("" means UTF-8).
func New(fs afero.Fs, charset string) (*Store, error) {
	name := strings.ToLower(strings.TrimSpace(charset))
	if name == "" {
		name = "utf-8"
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownCharset, "%q", charset)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = name
	}
	return &Store{fs: fs, charset: canonical, enc: enc}, nil
}

// Charset reports the canonical name of the file encoding.
func (s *Store) Charset() string { return s.charset }

// Exists reports whether path names a regular file.
func (s *Store) Exists(path string) (bool, error) {
	info, err := s.fs.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.WithMessage(err, "stat")
	}
	return !info.IsDir(), nil
}

// Load reads the tree stored at path, decoding each line with parse.
// An empty file yields a nil tree.
func Load[T any](s *Store, path string, parse codec.Parser[T]) (*core.Node[T], error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, errors.WithMessage(err, "open")
	}
	defer f.Close()

	tree, err := codec.Deserialize(s.decode(f), parse)
	if err != nil {
		return nil, errors.WithMessagef(err, "load %s", path)
	}
	return tree, nil
}

// Save writes tree to path in plain (non-pretty) form, replacing any
// existing file.
func Save[T any](s *Store, path string, tree *core.Node[T], opts ...codec.Option) (err error) {
	f, err := s.fs.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.WithMessage(err, "create")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.WithMessage(cerr, "close")
		}
	}()

	bw := bufio.NewWriter(f)
	w, closeEnc := s.encode(bw)
	if err = codec.Serialize(w, tree, opts...); err != nil {
		return errors.WithMessagef(err, "save %s", path)
	}
	if err = closeEnc(); err != nil {
		return errors.WithMessage(err, "encode")
	}
	if err = bw.Flush(); err != nil {
		return errors.WithMessage(err, "flush")
	}
	return nil
}

// Size returns the file size in bytes.
func (s *Store) Size(path string) (int64, error) {
	info, err := s.fs.Stat(path)
	if err != nil {
		return 0, errors.WithMessage(err, "stat")
	}
	return info.Size(), nil
}

func (s *Store) isUTF8() bool {
	return s.enc == unicode.UTF8 || s.enc == encoding.Nop
}

// decode wraps r with a charset-to-UTF-8 decoder.
func (s *Store) decode(r io.Reader) io.Reader {
	if s.isUTF8() {
		return r
	}
	return transform.NewReader(r, s.enc.NewDecoder())
}

// encode wraps w with a UTF-8-to-charset encoder; the returned func flushes it.
func (s *Store) encode(w io.Writer) (io.Writer, func() error) {
	if s.isUTF8() {
		return w, func() error { return nil }
	}
	tw := transform.NewWriter(w, s.enc.NewEncoder())
	return tw, tw.Close
}
