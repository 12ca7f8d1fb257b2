package mock_generator

import (
	"encoding/json"
	"fmt"
	"github.com/deanjroach84/DreamTales/application/ports/outbound"
	"os"
)

type StoryReader interface {
	Read(fileName string) ([]MockStory, error)
}

type fileStoryReader struct {
	logger outbound.LoggerPort
}

func NewFileStoryReader(logger outbound.LoggerPort) StoryReader {
	return &fileStoryReader{
		logger: logger,
	}
}

func (f *fileStoryReader) Read(fileName string) ([]MockStory, error) {
	stories, err := f.readJSONFile(fileName)
	if err != nil {
		return nil, err
	}
	if len(stories) == 0 {
		return nil, fmt.Errorf("no mock stories in %s", fileName)
	}

	return stories, nil
}

func (f *fileStoryReader) readJSONFile(fileName string) ([]MockStory, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			f.logger.Error(err, "failed to close file")
		}
	}(file)

	var stories []MockStory
	if err := json.NewDecoder(file).Decode(&stories); err != nil {
		f.logger.Error(err, "failed to decode json")
		return nil, err
	}

	return stories, nil
}
