package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/quantfold/tradecore/src/clock"
	"github.com/quantfold/tradecore/src/eventmodels"
	"github.com/quantfold/tradecore/src/eventpubsub"
	"github.com/quantfold/tradecore/src/eventservices"
	"github.com/quantfold/tradecore/src/identifiers"
	"github.com/quantfold/tradecore/src/logger"
	"github.com/quantfold/tradecore/src/portfolio"
	"github.com/quantfold/tradecore/src/utils"
)

// FillRecordDTO is one row of the input CSV, ordered by execution time.
type FillRecordDTO struct {
	ExecutionTime   string  `csv:"execution_time"`
	Symbol          string  `csv:"symbol"`
	OrderID         string  `csv:"order_id"`
	ExecutionID     string  `csv:"execution_id"`
	ExecutionTicket string  `csv:"execution_ticket"`
	Side            string  `csv:"side"`
	FilledQuantity  float64 `csv:"filled_quantity"`
	LeavesQuantity  float64 `csv:"leaves_quantity"`
	AveragePrice    float64 `csv:"average_price"`
}

func (dto *FillRecordDTO) ToModel() (eventmodels.OrderFillEvent, error) {
	executionTime, err := time.Parse(time.RFC3339, dto.ExecutionTime)
	if err != nil {
		return nil, fmt.Errorf("failed to parse execution time %s: %w", dto.ExecutionTime, err)
	}

	side, err := eventmodels.NewSideFromString(dto.Side)
	if err != nil {
		return nil, err
	}

	if dto.LeavesQuantity > 0 {
		return eventmodels.NewOrderPartiallyFilled(uuid.New(), eventmodels.Symbol(dto.Symbol), eventmodels.OrderID(dto.OrderID), eventmodels.ExecutionID(dto.ExecutionID), dto.ExecutionTicket, side, dto.FilledQuantity, dto.LeavesQuantity, dto.AveragePrice, executionTime, executionTime)
	}

	return eventmodels.NewOrderFilled(uuid.New(), eventmodels.Symbol(dto.Symbol), eventmodels.OrderID(dto.OrderID), eventmodels.ExecutionID(dto.ExecutionID), dto.ExecutionTicket, side, dto.FilledQuantity, dto.AveragePrice, executionTime, executionTime)
}

type RunArgs struct {
	CSVPath     string
	TraderTag   string
	StrategyTag string
	AccountID   string
}

type RunResult struct {
	Portfolio *portfolio.Portfolio
	Summary   *eventservices.PerformanceSummary
}

func Run(args RunArgs) (*RunResult, error) {
	idGenerator, err := identifiers.NewPositionIDGenerator(args.TraderTag, args.StrategyTag, clock.UTCClock{}, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create position id generator: %w", err)
	}

	pf, err := portfolio.NewPortfolio(eventmodels.AccountID(args.AccountID), idGenerator)
	if err != nil {
		return nil, fmt.Errorf("failed to create portfolio: %w", err)
	}

	f, err := os.Open(args.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", args.CSVPath, err)
	}
	defer f.Close()

	var records []*FillRecordDTO
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", args.CSVPath, err)
	}

	applied := 0
	for _, record := range records {
		fill, err := record.ToModel()
		if err != nil {
			return nil, fmt.Errorf("bad fill record (execution id %s): %w", record.ExecutionID, err)
		}

		if _, err := pf.OnFill(fill); err != nil {
			log.Warnf("fill rejected: %v", err)
			continue
		}

		applied += 1
	}

	log.Infof("applied %d of %d fills", applied, len(records))

	summary, err := eventservices.NewPerformanceSummary(pf.GetPositions())
	if err != nil {
		return nil, fmt.Errorf("failed to compute performance summary: %w", err)
	}

	return &RunResult{Portfolio: pf, Summary: summary}, nil
}

func render(result *RunResult) {
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Position", "Symbol", "Status", "Qty", "Peak", "Avg Open", "Avg Close", "Points", "Return"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, position := range result.Portfolio.GetPositions() {
		avgClose := "-"
		if v := position.AverageClosePrice(); v != nil {
			avgClose = p.Sprintf("%.5f", *v)
		}

		table.Append([]string{
			string(position.ID()),
			string(position.Symbol()),
			position.MarketPosition().String(),
			p.Sprintf("%v", position.Quantity()),
			p.Sprintf("%v", position.PeakQuantity()),
			p.Sprintf("%.5f", position.AverageOpenPrice()),
			avgClose,
			p.Sprintf("%.5f", position.RealizedPoints()),
			p.Sprintf("%.4f%%", position.RealizedReturn()*100),
		})
	}

	table.Render()

	summary := result.Summary
	fmt.Println()
	p.Printf("Positions: %d (%d open, %d closed), win rate %.1f%%\n", summary.PositionCount, summary.OpenCount, summary.ClosedCount, summary.WinRate*100)
	p.Printf("Returns: mean %.4f%%, stddev %.4f%%, min %.4f%%, max %.4f%%, median %.4f%%\n", summary.MeanReturn*100, summary.StdDevReturn*100, summary.MinReturn*100, summary.MaxReturn*100, summary.MedianReturn*100)
}

var runCmd = &cobra.Command{
	Use:   "replay --csv fills.csv",
	Short: "Replay a fill-event CSV through the position reducer and report the outcome",
	Run: func(cmd *cobra.Command, args []string) {
		csvPath, err := cmd.Flags().GetString("csv")
		if err != nil {
			log.Fatalf("error getting csv: %v", err)
		}

		traderTag, err := cmd.Flags().GetString("trader")
		if err != nil {
			log.Fatalf("error getting trader: %v", err)
		}

		strategyTag, err := cmd.Flags().GetString("strategy")
		if err != nil {
			log.Fatalf("error getting strategy: %v", err)
		}

		accountID, err := cmd.Flags().GetString("account")
		if err != nil {
			log.Fatalf("error getting account: %v", err)
		}

		result, err := Run(RunArgs{
			CSVPath:     csvPath,
			TraderTag:   traderTag,
			StrategyTag: strategyTag,
			AccountID:   accountID,
		})
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		render(result)
	},
}

func main() {
	logger.Setup()

	if err := utils.InitEnvironmentVariables(); err != nil {
		log.Fatalf("failed to init environment variables: %v", err)
	}

	eventpubsub.Init()

	runCmd.PersistentFlags().String("csv", "", "Path to the fill-event CSV, ordered by execution time")
	runCmd.PersistentFlags().String("trader", "REPLAY", "Trader tag embedded in generated position ids")
	runCmd.PersistentFlags().String("strategy", "S1", "Strategy tag embedded in generated position ids")
	runCmd.PersistentFlags().String("account", "SIM-001", "Account id the replayed positions belong to")
	runCmd.MarkPersistentFlagRequired("csv")

	if err := runCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
