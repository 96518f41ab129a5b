package disks

// Built-in disk tables. Each string lists key/value pairs in key iteration
// order. Regenerating any of them invalidates existing cipher text.
var (
	DiskA = MustParse("A", "0y1H2p3i495f6U7S8Y94QMMQf5TPPTKttKkFFkgaagU6EzzEDXXDRIIRS7mZZmNbbNAWWAhBBhY8wGGwxllxsnnsy0p2i3dccdjrrjCooCuJJuH1OVVOLeeLqvvq")
	DiskB = MustParse("B", "0E1o2c3J4u5L6d798G97XBBXRZZRgAAgxeexImmIPHHPkssku4G8TqqTKvvKVppVc2o1WyyWbYYbL5E0lOOljhhjzrrzFffFaCCad6UDDUJ3nttnMQQMNSSNiwwi")
	DiskC = MustParse("C", "0y1G2e374F5k6m738Y9gY8dXXdZnnZg9MBBMm6F4CSSCG1UqqUe2bRRbtWWtpccplQQlsiisvDDvLhhLNOONEjjEzIIzuPPufoofk5TxxTaKKaJwwJy0VrrVAHHA")
	DiskD = MustParse("D", "0G1F273m4q5b6J728A9yHNNHA8ojjoiuuiKkkKXUUXYffYJ6RddRwvvwcPPcb5q4tIItF1m3G0OTTOZDDZVxxVgllgMhhMnzzny9QppQWEEWeBBeaSSasrrsCLLC")
	DiskE = MustParse("E", "0d1X2c3b4q5r6D7t8g9PFKKFxooxYGGYEOOEIBBIb3yffyQTTQNVVNhwwhD6d0t7g8LvvLakkazsszeSSeq4JiiJARRAnHHnX1ummur5UppUlCClWjjWc2P9ZMMZ")
)

var defaultSet = &Set{disks: map[string]*Disk{
	"A": DiskA,
	"B": DiskB,
	"C": DiskC,
	"D": DiskD,
	"E": DiskE,
}}
