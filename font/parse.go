package font

import "os"
import "io"
import "io/fs"
import "fmt"
import "errors"

import "golang.org/x/image/font/sfnt"

// An error returned by the parsing functions when the requested face
// index falls outside the faces available in the font file.
var ErrFaceIndexOutOfRange = errors.New("face index out of range")

// Similar to [sfnt.ParseCollection]() plus face selection, also including
// the font's full name in the returned values. The bytes must not be
// modified while the font is in use.
//
// This is a low level function; you may prefer to open faces through a
// Library instead.
//
// [sfnt.ParseCollection]: https://pkg.go.dev/golang.org/x/image/font/sfnt#ParseCollection
func ParseFromBytes(fontBytes []byte, faceIndex int) (*sfnt.Font, string, error) {
	collection, err := sfnt.ParseCollection(fontBytes)
	if err != nil {
		return nil, "", err
	}
	newFont, err := pickFace(collection, faceIndex)
	if err != nil {
		return nil, "", err
	}
	fontName, err := GetName(newFont)
	return newFont, fontName, err
}

// Attempts to parse the font file at the given path and returns the face
// at the given face index along its name and any possible error. Supported
// formats are .ttf, .otf, .ttc and .otc.
//
// This is a low level function; you may prefer to open faces through a
// Library instead.
func ParseFromPath(path string, faceIndex int) (*sfnt.Font, string, error) {
	// check font path validity
	ok := hasValidFontExtension(path)
	if !ok {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}

	// open font file
	file, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	return parseFontFileAndClose(file, faceIndex)
}

// Same as [ParseFromPath](), but for filesystems. This is mainly provided
// to support [embed.FS] and embedded fonts.
func ParseFromFS(filesys fs.FS, path string, faceIndex int) (*sfnt.Font, string, error) {
	// check font path validity
	ok := hasValidFontExtension(path)
	if !ok {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}

	// open font file
	file, err := filesys.Open(path)
	if err != nil {
		return nil, "", err
	}
	return parseFontFileAndClose(file, faceIndex)
}

// Returns the number of faces bundled in the given font bytes. The result
// is 1 for plain .ttf and .otf data and possibly higher for collections.
func NumFaces(fontBytes []byte) (int, error) {
	collection, err := sfnt.ParseCollection(fontBytes)
	if err != nil {
		return 0, err
	}
	return collection.NumFonts(), nil
}

// ---- helpers ----

func pickFace(collection *sfnt.Collection, faceIndex int) (*sfnt.Font, error) {
	numFonts := collection.NumFonts()
	if faceIndex < 0 || faceIndex >= numFonts {
		return nil, fmt.Errorf(
			"%w: index %d with %d face(s) available",
			ErrFaceIndexOutOfRange, faceIndex, numFonts,
		)
	}
	return collection.Font(faceIndex)
}

func parseFontFileAndClose(file io.ReadCloser, faceIndex int) (*sfnt.Font, string, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, "", err
	}
	err = file.Close()
	if err != nil {
		return nil, "", err
	}
	return ParseFromBytes(fontBytes, faceIndex)
}

// Whether the font path ends in .ttf, .otf, .ttc or .otc.
func hasValidFontExtension(path string) bool {
	if len(path) < 4 {
		return false
	}
	last := path[len(path)-1]
	if last != 'f' && last != 'c' {
		return false
	}
	if path[len(path)-2] != 't' {
		return false
	}
	thrd := path[len(path)-3]
	if thrd != 't' && thrd != 'o' {
		return false
	}
	if path[len(path)-4] != '.' {
		return false
	}
	return true
}
