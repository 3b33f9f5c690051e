package services

import (
	"os"

	"github.com/sirupsen/logrus"
)

// cleanupList collects local temp paths during a submission and releases
// them all when it finishes, success or failure. A failed delete is logged
// and never stops the remaining deletes.
type cleanupList struct {
	log   *logrus.Logger
	paths []string
}

func newCleanupList(log *logrus.Logger) *cleanupList {
	return &cleanupList{log: log}
}

func (c *cleanupList) add(path string) {
	if path != "" {
		c.paths = append(c.paths, path)
	}
}

func (c *cleanupList) run() {
	for _, p := range c.paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			c.log.WithError(err).WithField("path", p).Warn("failed to delete local temp file")
		}
	}
}
