// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package storage

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/pkg/errors"
)

// MaxLogoSize is the largest accepted logo upload in bytes.
const MaxLogoSize = 2 * 1024 * 1024

var (
	ErrLogoTooLarge        = errors.New("logo must not be larger than 2 MiB")
	ErrUnsupportedLogoType = errors.New("logo must be a jpeg, png or svg image")
	ErrEmptyLogo           = errors.New("logo must not be empty")
)

var allowedLogoTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/svg+xml": ".svg",
}

// ValidateLogo sniffs the content type of data and checks it against the
// accepted logo formats. It returns the content type and the file extension
// to store the logo with.
func ValidateLogo(data []byte) (string, string, error) {
	if len(data) == 0 {
		return "", "", ErrEmptyLogo
	}
	if len(data) > MaxLogoSize {
		return "", "", ErrLogoTooLarge
	}

	mt := mimetype.Detect(data)
	for m := mt; m != nil; m = m.Parent() {
		if ext, ok := allowedLogoTypes[m.String()]; ok {
			return m.String(), ext, nil
		}
	}

	// svg exports often start with a comment, which is sniffed as html
	if (mt.Is("text/html") || mt.Is("text/xml") || mt.Is("text/plain")) && hasSVGRoot(data) {
		return "image/svg+xml", allowedLogoTypes["image/svg+xml"], nil
	}

	return "", "", errors.Wrapf(ErrUnsupportedLogoType, "got %s", mt.String())
}

// hasSVGRoot reports whether the first element of data is <svg>. Comments,
// processing instructions and directives before it are skipped.
func hasSVGRoot(data []byte) bool {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			return false
		}
		switch t := token.(type) {
		case xml.StartElement:
			return t.Name.Local == "svg"
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return false
			}
		}
	}
}

// LogoKey builds the object key of a new logo. Every upload gets a fresh key
// so that caches never serve a replaced logo.
func LogoKey(kind string, id uint, name string, ext string) string {
	base := slug.Make(name)
	if base == "" {
		base = "logo"
	}
	return fmt.Sprintf("%s/%d-%s-%s%s", strings.ReplaceAll(kind, "_", "-"), id, base, uuid.NewString(), ext)
}
