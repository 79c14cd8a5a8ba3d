package main

import (
	"io/fs"
	"path"
	"time"
)

// memFS is an in-memory FileSystem. Keys are absolute paths. ReadDir
// returns children in map order, deliberately unsorted, so tests exercise
// the listing's own sort.
type memFS struct {
	files      map[string]string // file path -> contents
	dirs       map[string]bool   // directory paths
	unreadable map[string]bool   // exists, but reads fail
}

func (m memFS) Stat(name string) (fs.FileInfo, error) {
	if m.dirs[name] {
		return memInfo{name: path.Base(name), dir: true}, nil
	}
	if c, ok := m.files[name]; ok {
		return memInfo{name: path.Base(name), size: int64(len(c))}, nil
	}
	return nil, fs.ErrNotExist
}

func (m memFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if m.unreadable[name] {
		return nil, fs.ErrPermission
	}
	if !m.dirs[name] {
		return nil, fs.ErrNotExist
	}
	var out []fs.DirEntry
	for d := range m.dirs {
		if d != name && path.Dir(d) == name {
			out = append(out, memDirEntry{name: path.Base(d), dir: true})
		}
	}
	for f := range m.files {
		if path.Dir(f) == name {
			out = append(out, memDirEntry{name: path.Base(f)})
		}
	}
	return out, nil
}

func (m memFS) ReadFile(name string) ([]byte, error) {
	if m.unreadable[name] {
		return nil, fs.ErrPermission
	}
	c, ok := m.files[name]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(c), nil
}

type memInfo struct {
	name string
	size int64
	dir  bool
}

func (i memInfo) Name() string { return i.name }
func (i memInfo) Size() int64  { return i.size }
func (i memInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (i memInfo) ModTime() time.Time { return time.Time{} }
func (i memInfo) IsDir() bool        { return i.dir }
func (i memInfo) Sys() any           { return nil }

type memDirEntry struct {
	name string
	dir  bool
}

func (e memDirEntry) Name() string { return e.name }
func (e memDirEntry) IsDir() bool  { return e.dir }
func (e memDirEntry) Type() fs.FileMode {
	if e.dir {
		return fs.ModeDir
	}
	return 0
}
func (e memDirEntry) Info() (fs.FileInfo, error) {
	return memInfo{name: e.name, dir: e.dir}, nil
}

const testRoot = "/srv"

func testFS() memFS {
	return memFS{
		dirs: map[string]bool{
			"/srv":     true,
			"/srv/sub": true,
		},
		files: map[string]string{
			"/srv/My File.txt": "spaced",
			"/srv/a.txt":       "hi",
			"/srv/sub/b.txt":   "bb",
		},
		unreadable: map[string]bool{},
	}
}
