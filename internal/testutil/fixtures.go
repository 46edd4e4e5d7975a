// Package testutil writes small trips files shaped like the real city datasets.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"bikeshare/explorer/config"
)

// ChicagoCSV has 3 trips in January and 2 in February.
// 2017-01-02 and 2017-02-06 are Mondays, 2017-01-08 is a Sunday and 2017-02-07 a Tuesday.
const ChicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-01-02 09:07:57,2017-01-02 09:20:53,776,Canal St & Adams St,Clark St & Randolph St,Subscriber,Male,1992.0
955915,2017-01-02 17:10:00,2017-01-02 17:20:00,600,Canal St & Adams St,Clark St & Randolph St,Subscriber,Female,1985.0
9031,2017-01-08 09:30:00,2017-01-08 09:45:00,900,"Broadway & Berwyn Ave, North",Canal St & Adams St,Customer,,
304487,2017-02-06 08:00:00,2017-02-06 08:04:00,240,Clark St & Randolph St,Canal St & Adams St,Subscriber,Male,1985.0
45207,2017-02-07 18:00:00,2017-02-07 18:10:00,584,Canal St & Adams St,"Broadway & Berwyn Ave, North",Subscriber,Male,1969.0
`

// WashingtonCSV has no Gender and no Birth Year columns
const WashingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
482740,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Subscriber
1330037,2017-05-30 01:02:59,2017-05-30 01:13:37,637.251,17th St & Massachusetts Ave NW,5th & K St NW,Customer
`

// NewYorkCityCSV has a row with an invalid start time that must be skipped
const NewYorkCityCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
5688089,2017-06-11 14:55:05,2017-06-11 15:08:21,795,Suffolk St & Stanton St,W Broadway & Spring St,Subscriber,Male,1998.0
4096714,not a date,2017-05-11 15:42:00,692,Lexington Ave & E 63 St,1 Ave & E 78 St,Subscriber,Male,1981.0
2173887,2017-03-29 13:26:26,2017-03-29 13:48:31,1325,Broadway & W 60 St,Broadway & W 60 St,,,
`

// WriteCityFiles writes the three trips files into a temporary directory and returns
// the default configuration pointing to it
func WriteCityFiles(t *testing.T) *config.ExplorerConfig {
	t.Helper()

	dataDir := t.TempDir()
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	cfg.DataDir = dataDir

	files := map[string]string{
		"chicago":       ChicagoCSV,
		"washington":    WashingtonCSV,
		"new york city": NewYorkCityCSV,
	}
	for city, content := range files {
		filename := cfg.CityFiles[city]
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, filename), []byte(content), 0o644))
	}

	return cfg
}
