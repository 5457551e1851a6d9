package dataloader

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

// openDataset opens the dataset source for reading. A URL source is downloaded
// to a temporary file first, retrying with exponential backoff. The caller
// closes the returned reader.
func openDataset(source string) (io.ReadCloser, error) {
	if isValidUrl(source) {
		tempFile, err := tempDownloadFile(source)
		if err != nil {
			return nil, err
		}

		return &tempFileReader{File: tempFile}, nil
	}

	return os.Open(source)
}

func isValidUrl(toTest string) bool {
	_, err := url.ParseRequestURI(toTest)
	if err != nil {
		return false
	}

	u, err := url.Parse(toTest)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	return true
}

func tempDownloadFile(source string) (*os.File, error) {
	tmpFile, err := os.CreateTemp(os.TempDir(), "okinavi-data-loader-")
	if err != nil {
		return nil, err
	}

	operation := func() error {
		resp, err := http.Get(source)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("dataset download returned status %d", resp.StatusCode)
		}

		if _, err := tmpFile.Seek(0, io.SeekStart); err != nil {
			return err
		}
		if err := tmpFile.Truncate(0); err != nil {
			return err
		}

		_, err = io.Copy(tmpFile, resp.Body)
		return err
	}

	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("source", source).Str("wait", wait.String()).Msg("Retrying dataset download")
	}

	if err := backoff.RetryNotify(operation, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), notify); err != nil {
		os.Remove(tmpFile.Name())
		return nil, err
	}

	if _, err := tmpFile.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	return tmpFile, nil
}

// tempFileReader removes the underlying temporary file on close.
type tempFileReader struct {
	*os.File
}

func (t *tempFileReader) Close() error {
	err := t.File.Close()
	os.Remove(t.File.Name())

	return err
}
