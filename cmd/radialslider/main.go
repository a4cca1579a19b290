package main

import (
	"flag"
	"log"

	"github.com/edward-ap/radialslider/internal/sliderapp"
)

func main() {
	trace := flag.Bool("traceLog", false, "log every pointer event the slider surface handles")
	configPath := flag.String("config", "", "read sliders from this .json or .toml file instead of the user config")
	export := flag.String("export", "", "write the initial surface to this SVG file and exit")
	flag.Parse()
	sliderapp.SetTraceLogEnabled(*trace)

	if *export != "" {
		cfg, err := sliderapp.LoadConfig(*configPath)
		if err != nil {
			log.Fatalln("config load error:", err)
		}
		if err := sliderapp.ExportSVG(cfg, *export); err != nil {
			log.Fatalln(err)
		}
		return
	}

	app := sliderapp.NewApp(*configPath)
	app.Run()
}
