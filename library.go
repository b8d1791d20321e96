package ftface

import "errors"
import "io/fs"

import "github.com/flopp/go-findfont"

import "github.com/fontgate/ftface/font"
import "github.com/fontgate/ftface/mask"

var errLibReleased = errors.New("library already released")
var errBadRenderMode = errors.New("unknown render mode")

// A Library represents one initialized instance of the font engine and
// is the exclusive factory for [Face] values. One per process is the
// normal arrangement; multiple libraries are permitted and independent.
//
// The Library doesn't track the faces it produced, but it must outlive
// all of them: close faces first, the library last.
type Library struct {
	rasterizer     mask.Rasterizer
	monoRasterizer mask.Rasterizer
	closed         bool
}

// Initializes a new engine instance. The returned library is never nil
// when the error is nil.
func NewLibrary() (*Library, error) {
	return &Library{
		rasterizer:     &mask.DefaultRasterizer{},
		monoRasterizer: &mask.MonoRasterizer{},
	}, nil
}

// Opens and parses the font file at the given path, selecting the face
// at faceIndex for collection formats (.ttc, .otc). For plain .ttf and
// .otf files the only valid faceIndex is 0.
//
// Missing files, unsupported or corrupt data and out-of-range face
// indices all surface as [*Error].
func (self *Library) NewFace(path string, faceIndex int) (*Face, error) {
	parsedFont, name, err := font.ParseFromPath(path, faceIndex)
	if err != nil { return nil, engineErr("NewFace", err) }
	return self.newFace(parsedFont, name)
}

// The equivalent of [Library.NewFace] for raw font bytes. The bytes
// must not be modified while the face is in use.
func (self *Library) NewFaceFromBytes(fontBytes []byte, faceIndex int) (*Face, error) {
	parsedFont, name, err := font.ParseFromBytes(fontBytes, faceIndex)
	if err != nil { return nil, engineErr("NewFaceFromBytes", err) }
	return self.newFace(parsedFont, name)
}

// The equivalent of [Library.NewFace] for filesystems. This is mainly
// provided to support [embed.FS] and embedded fonts.
func (self *Library) NewFaceFromFS(filesys fs.FS, path string, faceIndex int) (*Face, error) {
	parsedFont, name, err := font.ParseFromFS(filesys, path, faceIndex)
	if err != nil { return nil, engineErr("NewFaceFromFS", err) }
	return self.newFace(parsedFont, name)
}

// Resolves a font by name among the fonts installed on the system and
// opens it like [Library.NewFace]. Names that already look like paths
// to existing font files are used directly.
func (self *Library) NewFaceByName(name string, faceIndex int) (*Face, error) {
	path, err := findfont.Find(name)
	if err != nil { return nil, engineErr("NewFaceByName", err) }
	return self.NewFace(path, faceIndex)
}

// Releases the engine instance. Release failures are traced and
// swallowed, never surfaced: there is no actionable recovery for them
// during cleanup. Faces created by the library must be closed first.
func (self *Library) Close() {
	err := self.release()
	if err != nil {
		tracer().Errorf("ftface: releasing library: %v", err)
	}
}

func (self *Library) release() error {
	if self.closed { return errLibReleased }
	self.closed = true
	self.rasterizer = nil
	self.monoRasterizer = nil
	tracer().Debugf("ftface: released library")
	return nil
}

func (self *Library) newFace(parsedFont *Font, name string) (*Face, error) {
	if self.closed { return nil, engineErr("NewFace", errLibReleased) }
	face := &Face{ library: self, font: parsedFont, name: name }
	tracer().Debugf("ftface: opened face %q", name)
	return face, nil
}

func (self *Library) rasterizerFor(mode RenderMode) (mask.Rasterizer, error) {
	if self.closed { return nil, engineErr("Render", errLibReleased) }
	switch mode {
	case RenderNormal: return self.rasterizer, nil
	case RenderMono:   return self.monoRasterizer, nil
	default:
		return nil, engineErr("Render", errBadRenderMode)
	}
}
