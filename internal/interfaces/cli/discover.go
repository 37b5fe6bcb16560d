package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/veritrav/veritrav/internal/application/discovery"
	"github.com/veritrav/veritrav/internal/domain/place"
)

// Discoverer runs the discovery pipeline for a request.
type Discoverer interface {
	Discover(ctx context.Context, req discovery.Request) (*discovery.Result, error)
}

type discoverOptions struct {
	prompt       string
	regionLabel  string
	lat          float64
	lng          float64
	radiusKm     float64
	city         string
	district     string
	neighborhood string
	rainy        bool
	startLat     float64
	startLng     float64
	hasStart     bool
}

// NewDiscoverCmd runs a discovery and prints the resulting itinerary.
func NewDiscoverCmd(service Discoverer, rootOpts *RootOptions) *cobra.Command {
	opts := &discoverOptions{}

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Discover verified places and build a route for a prompt",
		Example: `  veritrav discover --prompt "성수동 데이트 코스" \
    --region 성수동 --lat 37.5445 --lng 127.0561 --radius 3 --city 서울`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.prompt == "" {
				return fmt.Errorf("--prompt is required")
			}

			req := discovery.Request{
				Prompt: opts.prompt,
				Region: place.Region{
					Label:    opts.regionLabel,
					Center:   place.Coordinate{Lat: opts.lat, Lng: opts.lng},
					RadiusKm: opts.radiusKm,
				},
				City:                 opts.city,
				RequiredDistrict:     opts.district,
				RequiredNeighborhood: opts.neighborhood,
				Rainy:                opts.rainy,
			}
			if cmd.Flags().Changed("start-lat") && cmd.Flags().Changed("start-lng") {
				req.Start = &place.Coordinate{Lat: opts.startLat, Lng: opts.startLng}
			}

			result, err := service.Discover(cmd.Context(), req)
			if err != nil {
				return err
			}

			if rootOpts.OutputFormat == "json" {
				return printJSON(result)
			}
			printItinerary(cmd, result)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.prompt, "prompt", "p", "", "travel prompt, e.g. \"성수동 데이트 코스\"")
	f.StringVar(&opts.regionLabel, "region", "", "region label for diagnostics and logging")
	f.Float64Var(&opts.lat, "lat", 0, "region center latitude")
	f.Float64Var(&opts.lng, "lng", 0, "region center longitude")
	f.Float64Var(&opts.radiusKm, "radius", 3, "search radius in kilometers")
	f.StringVar(&opts.city, "city", "", "city for district clustering")
	f.StringVar(&opts.district, "district", "", "required district substring")
	f.StringVar(&opts.neighborhood, "neighborhood", "", "required neighborhood substring")
	f.BoolVar(&opts.rainy, "rainy", false, "filter out rain-unsuitable places")
	f.Float64Var(&opts.startLat, "start-lat", 0, "route start latitude")
	f.Float64Var(&opts.startLng, "start-lng", 0, "route start longitude")

	return cmd
}

func printItinerary(cmd *cobra.Command, result *discovery.Result) {
	out := cmd.OutOrStdout()
	d := result.Diagnostics
	fmt.Fprintf(out, "Found %d candidates, accepted %d (request %s)\n\n",
		d.TotalFound, d.Accepted, d.RequestID)

	for i, p := range result.Route.Places {
		marker := " "
		if p.NeedsConfirmation {
			marker = "?"
		}
		fmt.Fprintf(out, "%2d. %s %s", i+1, marker, p.Name)
		if p.EffectiveAddress() != "" {
			fmt.Fprintf(out, "  (%s)", p.EffectiveAddress())
		}
		fmt.Fprintln(out)
	}

	if len(result.Route.Places) > 0 {
		fmt.Fprintf(out, "\nTotal: %.1f km, about %s\n",
			result.Route.TotalDistanceKm, result.Route.TotalDuration.Truncate(time.Minute))
	}
}

//Personal.AI order the ending
