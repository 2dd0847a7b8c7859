package persistence

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"

	"movie-alert/internal/apperr"
	"movie-alert/internal/models"
	"movie-alert/internal/persistence/interfaces"
	"movie-alert/internal/providers"
)

var errNullState = errors.New("state file holds null instead of an id array")

// FileManager loads and saves the seen set as a JSON array of movie ids,
// optionally zstd-compressed.
type FileManager struct {
	compressor interfaces.CompressorInterface
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
}

func NewFileManager(compressor interfaces.CompressorInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) *FileManager {
	return &FileManager{
		compressor: compressor,
		logger:     logger,
		metrics:    metrics,
	}
}

// Load returns an empty set when nothing exists at fileName. Content that is
// not an id array is an error, never an empty set.
func (f *FileManager) Load(fileName string) (models.SeenSet, error) {
	start := time.Now()
	defer func() { f.metrics.ObservePersistenceDuration(time.Since(start)) }()

	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			f.logger.Debugf(providers.TypeStore, "Data file %s does not exist", fileName)
			return models.NewSeenSet(), nil
		}
		return nil, apperr.IO("open "+fileName, err)
	}

	f.logger.Debugf(providers.TypeStore, "Data file found, loading %s", fileName)

	decompressed, err := f.compressor.Decompress(data)
	if err != nil {
		return nil, apperr.PersistedState(apperr.DirectionLoad, err)
	}

	if bytes.Equal(bytes.TrimSpace(decompressed), []byte("null")) {
		return nil, apperr.PersistedState(apperr.DirectionLoad, errNullState)
	}

	var ids []uint32
	if err := json.Unmarshal(decompressed, &ids); err != nil {
		return nil, apperr.PersistedState(apperr.DirectionLoad, err)
	}

	return models.NewSeenSet(ids...), nil
}

// Save replaces fileName atomically: the set goes to fileName.tmp, is synced,
// then renamed over the old file.
func (f *FileManager) Save(set models.SeenSet, fileName string) error {
	start := time.Now()
	defer func() { f.metrics.ObservePersistenceDuration(time.Since(start)) }()

	jsonData, err := json.Marshal(set.IDs())
	if err != nil {
		return apperr.PersistedState(apperr.DirectionSave, err)
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return apperr.PersistedState(apperr.DirectionSave, err)
	}

	if err := os.MkdirAll(filepath.Dir(fileName), 0755); err != nil {
		return apperr.IO("create directory for "+fileName, err)
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return apperr.IO("create "+tmpFile, err)
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return apperr.PersistedState(apperr.DirectionSave, err)
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return apperr.PersistedState(apperr.DirectionSave, err)
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return apperr.PersistedState(apperr.DirectionSave, err)
	}

	if err = os.Rename(tmpFile, fileName); err != nil {
		os.Remove(tmpFile)
		return apperr.PersistedState(apperr.DirectionSave, err)
	}

	f.logger.Debugf(providers.TypeStore, "Saved %d movie ids to %s", set.Len(), fileName)
	return nil
}

func (f *FileManager) Close() {
	f.compressor.Close()
}
