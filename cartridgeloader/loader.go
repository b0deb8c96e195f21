package cartridgeloader

import (
	"bytes"
	"crypto/md5"
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/kondrak/rust64-sub000/logger"
)

// Loader abstracts all the ways cartridge data can be loaded into the
// emulation: a local file, a bare byte slice (go:embed) or an http(s) URL.
type Loader struct {
	io.ReadSeeker

	// the name to use for the cartridge represented by Loader
	Name string

	// filename of the cartridge being loaded. for embedded data this field
	// holds the name passed to NewLoaderFromData.
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data.
	HashSHA1 string

	// HashMD5 is an alternative to HashSHA1.
	HashMD5 string

	// cartridge data. empty until Open() is called unless the loader was
	// created by NewLoaderFromData.
	//
	// the pointer-to-a-slice construct allows the cartridge to be
	// loaded/changed by a Loader instance that has been passed by value.
	Data *[]byte

	data *bytes.Buffer

	// whether the Loader was created with NewLoaderFromData
	embedded bool
}

// NoFilename is returned by NewLoaderFromFilename when given an empty or
// whitespace-only filename.
var NoFilename = errors.New("no filename")

// NewLoaderFromFilename is the preferred method of initialisation for the
// Loader type when loading data from a filename or URL.
//
// Filenames can contain whitespace, including leading and trailing
// whitespace, but cannot consist only of whitespace.
func NewLoaderFromFilename(filename string) (Loader, error) {
	if strings.TrimSpace(filename) == "" {
		return Loader{}, fmt.Errorf("cartridgeloader: %w", NoFilename)
	}

	if abs, err := filepath.Abs(filename); err == nil {
		if _, urlErr := url.ParseRequestURI(filename); urlErr != nil {
			filename = abs
		}
	}

	ld := Loader{Filename: filename}

	data := make([]byte, 0)
	ld.Data = &data
	ld.Name = decideOnName(ld)

	return ld, nil
}

// NewLoaderFromData is the preferred method of initialisation for the Loader
// type when loading data from a byte slice. It's a great way of loading
// embedded data (using go:embed) into the emulator.
//
// The name argument should not include a file extension because it won't be
// used.
func NewLoaderFromData(name string, data []byte) (Loader, error) {
	if len(data) == 0 {
		return Loader{}, fmt.Errorf("cartridgeloader: embedded data is empty")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Loader{}, fmt.Errorf("cartridgeloader: no name for embedded data")
	}

	ld := Loader{
		Filename: name,
		Data:     &data,
		data:     bytes.NewBuffer(data),
		embedded: true,
		HashSHA1: fmt.Sprintf("%x", sha1.Sum(data)),
		HashMD5:  fmt.Sprintf("%x", md5.Sum(data)),
	}

	ld.Name = decideOnName(ld)

	return ld, nil
}

// Close is a no-op for this loader; retained so Loader continues to satisfy
// io.Closer for callers that defer ld.Close() uniformly.
//
// Implements the io.Closer interface.
func (ld Loader) Close() error {
	return nil
}

// Implements the io.Reader interface.
func (ld Loader) Read(p []byte) (int, error) {
	if ld.data == nil {
		return 0, io.EOF
	}
	return ld.data.Read(p)
}

// Implements the io.Seeker interface.
func (ld Loader) Seek(offset int64, whence int) (int64, error) {
	if ld.data == nil {
		return 0, nil
	}
	return bytes.NewReader(ld.data.Bytes()).Seek(offset, whence)
}

// Open loads the cartridge data into memory. Loader filenames with a valid
// http(s) scheme are fetched over the network; anything else is treated as
// a local path.
func (ld *Loader) Open() error {
	if ld.embedded {
		return nil
	}

	if ld.Data != nil && len(*ld.Data) > 0 {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}
		*ld.Data = data
		logger.Logf("loader", "fetched %d bytes from %s", len(data), ld.Filename)

	default:
		f, err := os.Open(ld.Filename)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}
		*ld.Data = data
		logger.Logf("loader", "read %d bytes from %s", len(data), ld.Filename)
	}

	ld.data = bytes.NewBuffer(*ld.Data)

	hash := fmt.Sprintf("%x", sha1.Sum(*ld.Data))
	if ld.HashSHA1 != "" && ld.HashSHA1 != hash {
		return fmt.Errorf("cartridgeloader: unexpected SHA1 hash value")
	}
	ld.HashSHA1 = hash

	hash = fmt.Sprintf("%x", md5.Sum(*ld.Data))
	if ld.HashMD5 != "" && ld.HashMD5 != hash {
		return fmt.Errorf("cartridgeloader: unexpected MD5 hash value")
	}
	ld.HashMD5 = hash

	return nil
}
