// Command hinsaem analyzes Korean sentences eojeol by eojeol, printing the
// stem/ending and stem/particle decompositions each word admits.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	morph "github.com/yiunsr/hinsaem"
	"github.com/yiunsr/hinsaem/dictio"
	"github.com/yiunsr/hinsaem/internal/config"
	"github.com/yiunsr/hinsaem/internal/sentence"
	"github.com/yiunsr/hinsaem/morphdict"
)

var (
	configPath string
	logLevel   string
	log        = logrus.New()
)

func main() {
	root := &cobra.Command{
		Use:   "hinsaem",
		Short: "Decompose Korean eojeol into stem and ending/particle morphemes",
		RunE:  runAnalyze,
	}
	root.Flags().StringVar(&configPath, "config", "", "path to a YAML config file (optional)")
	root.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	if err := root.Execute(); err != nil {
		log.WithError(err).Fatal("hinsaem failed")
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Default()
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	eomi, err := loadIndex(cfg.EomiPaths)
	if err != nil {
		return fmt.Errorf("loading ending dictionary: %w", err)
	}
	josa, err := loadIndex(cfg.JosaPaths)
	if err != nil {
		return fmt.Errorf("loading particle dictionary: %w", err)
	}

	engine := morph.NewEngine(cfg, eomi, josa)
	return analyzeStdin(engine)
}

// loadIndex builds one morphdict.Index from every TSV path in paths. A path
// that can't be read aborts the load with its error, so no engine is built
// from a partially-missing resource set.
func loadIndex(paths []string) (*morphdict.Index, error) {
	var entries []morphdict.Entry
	for _, p := range paths {
		rows, err := dictio.LoadTSV(p, log)
		if err != nil {
			return nil, err
		}
		entries = append(entries, rows...)
	}
	return morphdict.Build(entries), nil
}

func analyzeStdin(engine *morph.Engine) error {
	scanner := bufio.NewScanner(os.Stdin)
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	for scanner.Scan() {
		for _, eojeol := range sentence.Split(scanner.Text()) {
			printAnalyses(w, engine, eojeol)
		}
	}
	return scanner.Err()
}

func printAnalyses(w *bufio.Writer, engine *morph.Engine, eojeol string) {
	endings, err := engine.AnalyzeEnding(eojeol)
	if err != nil {
		log.WithError(err).WithField("eojeol", eojeol).Warn("ending analysis failed")
	}
	particles, err := engine.AnalyzeParticle(eojeol)
	if err != nil {
		log.WithError(err).WithField("eojeol", eojeol).Warn("particle analysis failed")
	}

	all := append(endings, particles...)
	if len(all) == 0 {
		fmt.Fprintf(w, "%s\t(no analysis)\n", eojeol)
		return
	}
	for _, a := range all {
		fmt.Fprintf(w, "%s\t%s/%s\n", eojeol, a.Stem, a.PosString())
	}
}
