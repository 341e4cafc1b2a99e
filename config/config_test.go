package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/go-graphkit/graphkit/config"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) writeYAML(contents string) string {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "run.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func (s *ConfigSuite) TestLoadAndValidateGoodRun() {
	path := s.writeYAML("algorithm: dijkstra\ncorpus_path: corpus.txt\nsource: 0\n")
	r, err := config.Load(path)
	s.Require().NoError(err)
	s.Equal(config.AlgorithmDijkstra, r.Algorithm)
	s.Equal("corpus.txt", r.CorpusPath)
	s.NoError(r.Validate())
}

func (s *ConfigSuite) TestValidateRejectsUnknownAlgorithm() {
	r := &config.Run{Algorithm: "quantum-tsp", CorpusPath: "x.txt"}
	err := r.Validate()
	s.Require().Error(err)
	var validation *config.ValidationError
	s.ErrorAs(err, &validation)
}

func (s *ConfigSuite) TestValidateRejectsEmptyCorpusPath() {
	r := &config.Run{Algorithm: config.AlgorithmBFS}
	err := r.Validate()
	s.Require().Error(err)
	var validation *config.ValidationError
	s.ErrorAs(err, &validation)
}

func (s *ConfigSuite) TestValidateRequiresSinkForMaxFlow() {
	r := &config.Run{Algorithm: config.AlgorithmMaxFlow, CorpusPath: "x.txt"}
	err := r.Validate()
	s.Require().Error(err)

	sink := 3
	r.Sink = &sink
	s.NoError(r.Validate())
}

func (s *ConfigSuite) TestLoadFailsOnMissingFile() {
	_, err := config.Load("/nonexistent/path.yaml")
	s.Error(err)
}
