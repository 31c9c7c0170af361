package args

// CallbackOption is invoked by the parser with the option value as soon as the option is seen.
type CallbackOption func(string) error

// General holds the options shared by every command.
var General struct {
	Verbose               []bool         `short:"v" long:"verbose"             env:"BASE45_VERBOSITY"          description:"Show verbose debug information. Repeat to increase verbosity."`
	ConfigurationFile     CallbackOption `short:"c" long:"config"              env:"BASE45_CONFIG"             description:"Configuration file (yaml-formatted)" no-ini:"true"`
	ConfigurationFilePath string
	LogFile               *string `short:"l" long:"log-file"            env:"BASE45_LOG_FILE"           description:"Log file (file will be appended). If not set, defaults to stderr." default:"-"`
	LogFormat             string  `short:"f" long:"log-format"          env:"BASE45_LOG_FORMAT"         description:"Log file format (json or text)." choice:"text" choice:"json" default:"text"`
	LogColor              string  `short:"C" long:"log-color"           env:"BASE45_LOG_COLOR"          description:"Should the log output be colored? true, false or auto" choice:"yes" choice:"no" choice:"true" choice:"false" choice:"auto" default:"auto"`
	LogFullTimestamp      bool    `          long:"log-full-timestamp"  env:"BASE45_LOG_FULL_TIMESTAMP" description:"Display full timestamp in logs."`
	LogReportCaller       bool    `          long:"log-report-caller"   env:"BASE45_LOG_REPORT_CALLER"  description:"If you wish to add the calling method as a field."`
}
