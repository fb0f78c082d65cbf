package config

// Example usage of the configuration system:
//
// 1. Load configuration with all sources:
//
//     cfg, err := config.Load("", nil)
//     if err != nil {
//         log.Fatal(err)
//     }
//
// 2. Load with custom config file:
//
//     cfg, err := config.Load("/path/to/config.yaml", nil)
//     if err != nil {
//         log.Fatal(err)
//     }
//
// 3. Load with command line flags:
//
//     flags := map[string]interface{}{
//         "width":     120,
//         "bar-width": 40,
//         "speed":     0.5,
//         "no-color":  true,
//         "log-level": "debug",
//     }
//     cfg, err := config.Load("", flags)
//     if err != nil {
//         log.Fatal(err)
//     }
//
// 4. Programmatic configuration:
//
//     cfg := config.DefaultConfig()
//     cfg.Display.Width = 120
//     cfg.Animation.Speed = 2.0
//
//     if err := cfg.Validate(); err != nil {
//         log.Fatal(err)
//     }
//
// 5. Save configuration to file:
//
//     if err := cfg.Save(".termfx.yaml"); err != nil {
//         log.Fatal(err)
//     }
//
// 6. Environment variables:
//
//     export TERMFX_WIDTH="120"
//     export TERMFX_BAR_WIDTH="40"
//     export TERMFX_COLOR="false"
//     export TERMFX_SPEED="0.5"
//     export TERMFX_LOG_LEVEL="debug"
//     export TERMFX_LOG_FILE="/tmp/termfx.log"
//
// 7. Using configuration in your application:
//
//     term := console.NewWidth(os.Stdout, cfg.Display.Width)
//
//     bar := progress.Bar{
//         Width: cfg.Display.BarWidth,
//         Fill:  cfg.Display.BarFill,
//         Empty: cfg.Display.BarEmpty,
//     }
//
//     pacer := pace.NewSleeper(cfg.Animation.Speed)
//     timing := cfg.Animation.Timing()
//
// Configuration precedence (highest to lowest):
//   1. Command line flags
//   2. Environment variables (TERMFX_*)
//   3. .env file values
//   4. Configuration file (.termfx.yaml)
//   5. Default values
