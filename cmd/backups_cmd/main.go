package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/2beens/eragrok/internal"
	"github.com/2beens/eragrok/internal/config"
	"github.com/2beens/eragrok/internal/logging"
	"github.com/2beens/eragrok/internal/userdir"
	"github.com/2beens/eragrok/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	destDir := flag.String("dest", "./backups", "directory receiving the tar.gz archive")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	usersDir := filepath.Join(cfg.DataDir, internal.UsersDirName)
	archivePath, err := backupUsers(usersDir, *destDir, time.Now())
	if err != nil {
		log.Fatalf("backup users: %s", err)
	}

	resolver, err := userdir.NewResolver(usersDir)
	if err != nil {
		log.Fatalf("users resolver: %s", err)
	}
	users, err := resolver.Users()
	if err != nil {
		log.Warnf("list backed up users: %s", err)
	}
	log.Infof("%d users backed up to [%s]: %v", len(users), archivePath, users)
}

// backupUsers archives the users directory into destDir/users_<timestamp>.tar.gz.
func backupUsers(usersDir, destDir string, now time.Time) (string, error) {
	exists, err := pkg.PathExists(usersDir, true)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("users dir [%s] does not exist", usersDir)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("create backups dir: %w", err)
	}

	archivePath := filepath.Join(destDir, fmt.Sprintf("users_%s.tar.gz", now.Format("20060102_150405")))
	archive, err := os.Create(archivePath)
	if err != nil {
		return "", fmt.Errorf("create archive: %w", err)
	}
	defer archive.Close()

	if err := pkg.Compress(usersDir, archive); err != nil {
		_ = os.Remove(archivePath)
		return "", fmt.Errorf("compress: %w", err)
	}
	return archivePath, archive.Close()
}
