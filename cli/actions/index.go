package actions

import "fmt"
import "os"
import log "github.com/cihub/seelog"
import "github.com/spf13/cobra"
import "github.com/cwacek/ngramengine/index"
import "github.com/cwacek/ngramengine/ngrams"

func indexCmd() *cobra.Command {

	cf := new(corpusFlags)
	pf := new(pipelineFlags)
	var saveTo string

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build a positional n-gram index and print its lexicon",
		RunE: func(cmd *cobra.Command, args []string) error {

			docs, err := cf.load()
			if err != nil {
				return err
			}

			proc, err := ngrams.NewBatchProcessor(pf.config())
			if err != nil {
				return err
			}

			ix := index.NewIndex()
			ix.Add(proc.Process(docs))

			fmt.Println(ix.String())
			ix.PrintLexicon(os.Stdout)

			if saveTo != "" {
				file, err := os.Create(saveTo)
				if err != nil {
					return err
				}
				defer file.Close()

				if err := ix.Save(file); err != nil {
					return err
				}
				log.Infof("Saved index to %s", saveTo)
			}

			return nil
		},
	}

	cf.register(cmd)
	pf.register(cmd)
	cmd.Flags().StringVar(&saveTo, "index.save", "",
		"Write the index as JSON to this file")

	return cmd
}
