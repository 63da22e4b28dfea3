package statepaths

import (
	"github.com/morphlab/steamward/internal/pathutil"
	"github.com/spf13/viper"
)

const aliasFilename = "aliases.json"

func FileStateDir() string {
	return pathutil.ResolveStateDir(viper.GetString("file_state_dir"))
}

// AliasFilePath is the canonical location of the persisted alias document.
func AliasFilePath() string {
	return pathutil.ResolveStateFile(viper.GetString("file_state_dir"), aliasFilename)
}
