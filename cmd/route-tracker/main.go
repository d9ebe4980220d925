package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	bustime "github.com/lamarjs/route-tracker"
	"github.com/lamarjs/route-tracker/config"
	"github.com/lamarjs/route-tracker/internal/logging"
	"github.com/lamarjs/route-tracker/server"
)

func main() {
	logging.Init()

	app := &cli.App{
		Name:        "route-tracker",
		Description: "Typed client and web API for the CTA Bustime (BusTracker) API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "key",
				Usage:   "Bustime API key",
				EnvVars: []string{bustime.KeyEnvVar},
			},
			&cli.StringFlag{
				Name:  "base",
				Value: bustime.DefaultBaseURL,
				Usage: "Bustime API base URL",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "routes",
				Usage: "list every bus line in service",
				Action: func(c *cli.Context) error {
					routes, err := newClient(c).Routes()
					if err != nil {
						return err
					}
					return printJSON(routes)
				},
			},
			{
				Name:  "directions",
				Usage: "list the directions travelled by a route",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "route", Aliases: []string{"r"}, Required: true},
				},
				Action: func(c *cli.Context) error {
					directions, err := newClient(c).Directions(c.String("route"))
					if err != nil {
						return err
					}
					return printJSON(directions)
				},
			},
			{
				Name:  "stops",
				Usage: "list the stops along a route and direction",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "route", Aliases: []string{"r"}, Required: true},
					&cli.StringFlag{Name: "direction", Aliases: []string{"d"}, Required: true},
				},
				Action: func(c *cli.Context) error {
					stops, err := newClient(c).Stops(c.String("route"), c.String("direction"))
					if err != nil {
						return err
					}
					return printJSON(stops)
				},
			},
			{
				Name:  "predictions",
				Usage: "fetch arrival/departure predictions for stops",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "stops", Aliases: []string{"s"}, Required: true, Usage: "comma separated stop ids"},
					&cli.StringFlag{Name: "routes", Aliases: []string{"r"}, Usage: "comma separated route codes"},
					&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Value: 10},
				},
				Action: func(c *cli.Context) error {
					predictions, err := newClient(c).Predictions(c.String("stops"), c.String("routes"), c.Int("limit"))
					if err != nil {
						return err
					}
					return printJSON(predictions)
				},
			},
			{
				Name:  "serve",
				Usage: "run the web API",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "port", Usage: "overrides server.port from config.yml"},
				},
				Action: func(c *cli.Context) error {
					if err := config.LoadAppConfig(); err != nil {
						return err
					}
					cfg := config.Config
					port := cfg.Server.Port
					if c.Int("port") != 0 {
						port = c.Int("port")
					}
					client := bustime.NewClient(cfg.Bustime.Key,
						bustime.WithBaseURL(cfg.Bustime.BaseURL),
						bustime.WithHTTPClient(&http.Client{
							Timeout: time.Duration(cfg.Bustime.TimeoutMS) * time.Millisecond,
						}),
					)
					return server.New(client).Run(port)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func newClient(c *cli.Context) *bustime.Client {
	return bustime.NewClient(c.String("key"), bustime.WithBaseURL(c.String("base")))
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
