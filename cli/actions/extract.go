package actions

import "bufio"
import "encoding/json"
import "fmt"
import "os"
import log "github.com/cihub/seelog"
import "github.com/spf13/cobra"
import "github.com/cwacek/ngramengine/ngrams"

func extractCmd() *cobra.Command {

	cf := new(corpusFlags)
	pf := new(pipelineFlags)
	var asJson bool

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Print the n-grams of a document collection",
		RunE: func(cmd *cobra.Command, args []string) error {

			docs, err := cf.load()
			if err != nil {
				return err
			}

			proc, err := ngrams.NewBatchProcessor(pf.config())
			if err != nil {
				return err
			}

			records := proc.Process(docs)
			log.Infof("Writing %d records", len(records))

			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()

			if asJson {
				enc := json.NewEncoder(out)
				for _, rec := range records {
					if err := enc.Encode(rec); err != nil {
						return err
					}
				}
				return nil
			}

			for _, rec := range records {
				fmt.Fprintf(out, "%s\t%d\t%s\n", rec.DocId, rec.Position, rec.Text)
			}
			return nil
		},
	}

	cf.register(cmd)
	pf.register(cmd)
	cmd.Flags().BoolVar(&asJson, "json", false, "Emit records as JSON lines")

	return cmd
}
