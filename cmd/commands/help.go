package commands

import "fmt"

const usage = `mediabridge - upload media into a Notion database and browse it as a gallery

usage:
  mediabridge run <config.yml>          start the bridge service
  mediabridge events <config.yml>       log entry events from the redis stream
  mediabridge health                    probe the bridge
  mediabridge list                      print the gallery
  mediabridge upload [flags]            create an entry from a file or an external URL
  mediabridge add-url [flags]           create a bookmark entry
  mediabridge delete [flags]            archive an entry
  mediabridge version                   print the version
  mediabridge help                      print this message

client commands find the bridge through $MEDIABRIDGE_BACKEND_URL, falling back to
http://localhost:3001. Run "mediabridge <command> -h" for command flags.`

func HandleHelp(_ []string) {
	fmt.Println(usage) //nolint
}
