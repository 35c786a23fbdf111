// Package userdir maps user names to their data directories and serializes
// read-modify-write cycles on the files inside them.
package userdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/2beens/eragrok/pkg"

	log "github.com/sirupsen/logrus"
)

var ErrInvalidUser = errors.New("invalid user")

// DirName turns a user name into its directory name: lower case, spaces replaced by underscores.
func DirName(user string) (string, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(user)), " ", "_")
	switch {
	case name == "", name == ".", name == "..":
		return "", fmt.Errorf("%w: %q", ErrInvalidUser, user)
	case strings.ContainsAny(name, `/\`+"\x00"):
		return "", fmt.Errorf("%w: %q", ErrInvalidUser, user)
	}
	return name, nil
}

type Resolver struct {
	root  string
	mutex sync.Mutex
	locks map[string]*sync.Mutex
}

// NewResolver checks that root exists as a directory, creating it if missing.
func NewResolver(root string) (*Resolver, error) {
	if root == "" {
		return nil, errors.New("users root path cannot be empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create users root: %w", err)
	}
	if _, err := pkg.PathExists(root, true); err != nil {
		return nil, fmt.Errorf("users root: %w", err)
	}

	log.Debugf("userdir: users root [%s]", root)
	return &Resolver{
		root:  root,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

func (r *Resolver) Root() string {
	return r.root
}

// Dir returns the user's directory without creating it.
func (r *Resolver) Dir(user string) (string, error) {
	name, err := DirName(user)
	if err != nil {
		return "", err
	}
	return filepath.Join(r.root, name), nil
}

// File returns the path of fileName inside the user's directory.
func (r *Resolver) File(user, fileName string) (string, error) {
	dir, err := r.Dir(user)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// EnsureFile is File plus creation of the user's directory.
func (r *Resolver) EnsureFile(user, fileName string) (string, error) {
	dir, err := r.Dir(user)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create user dir: %w", err)
	}
	return filepath.Join(dir, fileName), nil
}

// Lock acquires the mutex guarding path and returns its unlock func.
func (r *Resolver) Lock(path string) func() {
	r.mutex.Lock()
	l, ok := r.locks[path]
	if !ok {
		l = &sync.Mutex{}
		r.locks[path] = l
	}
	r.mutex.Unlock()

	l.Lock()
	return l.Unlock
}

// Users lists the directory names present under the root.
func (r *Resolver) Users() ([]string, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return nil, fmt.Errorf("read users root: %w", err)
	}
	var users []string
	for _, e := range entries {
		if e.IsDir() {
			users = append(users, e.Name())
		}
	}
	return users, nil
}
