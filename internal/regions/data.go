package regions

// SriLanka returns the district → divisional secretariat hierarchy in the
// order the forms list it.
func SriLanka() Hierarchy {
	h := make(Hierarchy, len(sriLankaDistricts))
	for i, d := range sriLankaDistricts {
		divisions := make([]string, len(d.Divisions))
		copy(divisions, d.Divisions)
		h[i] = District{Name: d.Name, Divisions: divisions}
	}
	return h
}

// SriLankaAnchors returns the district and division lookup coordinates.
func SriLankaAnchors() Anchors {
	a := Anchors{
		Districts: make(map[string]Coordinates, len(districtCoordinates)),
		Divisions: make(map[string]Coordinates, len(divisionCoordinates)),
	}
	for k, v := range districtCoordinates {
		a.Districts[k] = v
	}
	for k, v := range divisionCoordinates {
		a.Divisions[k] = v
	}
	return a
}

var sriLankaDistricts = []District{
	{Name: "Colombo", Divisions: []string{
		"Colombo", "Thimbirigasyaya", "Dehiwala", "Ratmalana", "Moratuwa", "Kesbewa", "Maharagama",
		"Sri Jayawardanapura Kotte", "Kolonnawa", "Kaduwela", "Homagama", "Seethawaka", "Padukka",
	}},
	{Name: "Gampaha", Divisions: []string{
		"Negombo", "Katana", "Divulapitiya", "Mirigama", "Minuwangoda", "Wattala", "Ja-Ela",
		"Gampaha", "Attanagalla", "Dompe", "Mahara", "Kelaniya", "Biyagama",
	}},
	{Name: "Kalutara", Divisions: []string{
		"Panadura", "Bandaragama", "Horana", "Ingiriya", "Bulathsinhala", "Madurawala", "Millaniya",
		"Kalutara", "Beruwala", "Dodangoda", "Mathugama", "Agalawatta", "Palindanuwara", "Walallawita",
	}},
	{Name: "Kandy", Divisions: []string{
		"Thumpane", "Poojapitiya", "Akurana", "Pathadumbara", "Panvila", "Udadumbara", "Minipe",
		"Medadumbara", "Kundasale", "Kandy Four Gravets", "Harispattuwa", "Hatharaliyadda",
		"Yatinuwara", "Udunuwara", "Doluwa", "Pathahewaheta", "Deltota", "Udapalatha",
		"Ganga Ihala Korale", "Pasbage Korale",
	}},
	{Name: "Matale", Divisions: []string{
		"Galewela", "Dambulla", "Naula", "Pallepola", "Yatawatta", "Matale", "Ambanganga Korale",
		"Laggala-Pallegama", "Wilgamuwa", "Rattota", "Ukuwela",
	}},
	{Name: "Nuwara Eliya", Divisions: []string{
		"Kothmale", "Hanguranketha", "Walapane", "Nuwara Eliya", "Ambagamuwa",
	}},
	{Name: "Galle", Divisions: []string{
		"Bentota", "Balapitiya", "Karandeniya", "Elpitiya", "Niyagama", "Thawalama", "Neluwa",
		"Nagoda", "Baddegama", "Welivitiya-Divithura", "Ambalangoda", "Gonapinuwala", "Hikkaduwa",
		"Bope-Poddala", "Akmeemana", "Galle Four Gravets", "Habaraduwa", "Yakkalamulla", "Imaduwa",
	}},
	{Name: "Matara", Divisions: []string{
		"Kotapola", "Pasgoda", "Pitabeddara", "Mulatiyana", "Akuressa", "Welipitiya", "Malimbada",
		"Kamburupitiya", "Hakmana", "Kirinda Puhulwella", "Thihagoda", "Weligama",
		"Matara Four Gravets", "Devinuwara", "Dickwella", "Athuraliya",
	}},
	{Name: "Hambantota", Divisions: []string{
		"Lunugamvehera", "Sooriyawewa", "Tissamaharama", "Hambantota", "Ambalantota",
		"Angunakolapelessa", "Weeraketiya", "Katuwana", "Walasmulla", "Okewela", "Beliatta", "Tangalle",
	}},
	{Name: "Jaffna", Divisions: []string{
		"Jaffna", "Nallur", "Kopay", "Chavakachcheri", "Point Pedro", "Karaveddy", "Maruthankerny",
		"Tellippalai", "Uduvil", "Sandilipay", "Chankanai", "Kayts", "Velanai", "Karainagar", "Delft",
	}},
	{Name: "Kilinochchi", Divisions: []string{
		"Karachchi", "Kandavalai", "Pachchilaipalli", "Poonakary",
	}},
	{Name: "Mannar", Divisions: []string{
		"Mannar Town", "Manthai West", "Madhu", "Nanattan", "Musali",
	}},
	{Name: "Vavuniya", Divisions: []string{
		"Vavuniya", "Vavuniya North", "Vavuniya South", "Vengalacheddikulam",
	}},
	{Name: "Mullaitivu", Divisions: []string{
		"Maritimepattu", "Puthukudiyiruppu", "Oddusuddan", "Thunukkai", "Manthai East", "Welioya",
	}},
	{Name: "Batticaloa", Divisions: []string{
		"Koralai Pattu North", "Koralai Pattu Central", "Koralai Pattu West", "Koralai Pattu",
		"Koralai Pattu South", "Eravur Pattu", "Eravur Town", "Manmunai North", "Manmunai West",
		"Kattankudy", "Manmunai Pattu", "Manmunai South-West", "Porativu Pattu",
		"Manmunai South & Eruvil Pattu",
	}},
	{Name: "Ampara", Divisions: []string{
		"Dehiattakandiya", "Padiyathalawa", "Mahaoya", "Uhana", "Ampara", "Damana", "Lahugala",
		"Irakkamam", "Sammanthurai", "Navithanveli", "Karaitivu", "Kalmunai", "Sainthamaruthu",
		"Ninthavur", "Addalachchenai", "Alayadiwembu", "Akkaraipattu", "Thirukkovil", "Pottuvil",
	}},
	{Name: "Trincomalee", Divisions: []string{
		"Padavi Sri Pura", "Kuchchaveli", "Gomarankadawala", "Morawewa", "Trincomalee Town and Gravets",
		"Thambalagamuwa", "Kinniya", "Kantale", "Muttur", "Seruvila", "Verugal",
	}},
	{Name: "Kurunegala", Divisions: []string{
		"Giribawa", "Galgamuwa", "Ehetuwewa", "Ambanpola", "Kotavehera", "Rasnayakapura",
		"Nikaweratiya", "Mahawa", "Polpithigama", "Ibbagamuwa", "Ganewatta", "Wariyapola",
		"Kobeigane", "Bingiriya", "Panduwasnuwara West", "Panduwasnuwara East", "Bamunakotuwa",
		"Maspotha", "Kurunegala", "Mallawapitiya", "Mawathagama", "Rideegama", "Weerambugedara",
		"Kuliyapitiya East", "Kuliyapitiya West", "Udubaddawa", "Pannala", "Narammala", "Alawwa",
		"Polgahawela",
	}},
	{Name: "Puttalam", Divisions: []string{
		"Kalpitiya", "Vanathavilluwa", "Karuwalagaswewa", "Nawagattegama", "Puttalam", "Mundel",
		"Mahakumbukkadawala", "Anamaduwa", "Pallama", "Arachchikattuwa", "Chilaw", "Madampe",
		"Mahawewa", "Nattandiya", "Wennappuwa", "Dankotuwa",
	}},
	{Name: "Anuradhapura", Divisions: []string{
		"Padaviya", "Kebithigollewa", "Medawachchiya", "Mahavilachchiya",
		"Nuwaragam Palatha Central", "Rambewa", "Kahatagasdigiliya", "Horowpothana",
		"Galenbindunuwewa", "Mihinthale", "Nuwaragam Palatha East", "Nachchaduwa", "Nochchiyagama",
		"Rajanganaya", "Thambuttegama", "Thalawa", "Thirappane", "Kekirawa", "Palugaswewa",
		"Ipalogama", "Galnewa", "Palagala",
	}},
	{Name: "Polonnaruwa", Divisions: []string{
		"Hingurakgoda", "Medirigiriya", "Lankapura", "Welikanda", "Dimbulagala", "Thamankaduwa", "Elahera",
	}},
	{Name: "Badulla", Divisions: []string{
		"Mahiyanganaya", "Rideemaliyadda", "Meegahakiula", "Kandaketiya", "Soranathota", "Passara",
		"Lunugala", "Badulla", "Hali-Ela", "Uva-Paranagama", "Welimada", "Ella", "Bandarawela",
		"Haputale", "Haldummulla",
	}},
	{Name: "Monaragala", Divisions: []string{
		"Bibile", "Madulla", "Medagama", "Siyambalanduwa", "Monaragala", "Badalkumbura", "Buttala",
		"Wellawaya", "Thanamalvila", "Sevanagala", "Kataragama",
	}},
	{Name: "Ratnapura", Divisions: []string{
		"Eheliyagoda", "Kuruvita", "Kiriella", "Ratnapura", "Imbulpe", "Balangoda", "Opanayaka",
		"Pelmadulla", "Elapatha", "Ayagama", "Kalawana", "Nivithigala", "Kahawatta", "Godakawela",
		"Weligepola", "Embilipitiya", "Kolonna",
	}},
	{Name: "Kegalle", Divisions: []string{
		"Rambukkana", "Mawanella", "Aranayaka", "Kegalle", "Galigamuwa", "Warakapola", "Ruwanwella",
		"Bulathkohupitiya", "Yatiyantota", "Dehiowita", "Deraniyagala",
	}},
}

var districtCoordinates = map[string]Coordinates{
	"Colombo":      {Lat: 6.9271, Lng: 79.8612},
	"Gampaha":      {Lat: 7.0917, Lng: 79.9997},
	"Kalutara":     {Lat: 6.5854, Lng: 79.9607},
	"Kandy":        {Lat: 7.2906, Lng: 80.6337},
	"Matale":       {Lat: 7.4675, Lng: 80.6234},
	"Nuwara Eliya": {Lat: 6.9497, Lng: 80.7891},
	"Galle":        {Lat: 6.0535, Lng: 80.2210},
	"Matara":       {Lat: 5.9485, Lng: 80.5353},
	"Hambantota":   {Lat: 6.1241, Lng: 81.1185},
	"Jaffna":       {Lat: 9.6615, Lng: 80.0255},
	"Kilinochchi":  {Lat: 9.3803, Lng: 80.3770},
	"Mannar":       {Lat: 8.9810, Lng: 79.9044},
	"Vavuniya":     {Lat: 8.7514, Lng: 80.4971},
	"Mullaitivu":   {Lat: 9.2671, Lng: 80.8142},
	"Batticaloa":   {Lat: 7.7170, Lng: 81.7000},
	"Ampara":       {Lat: 7.2975, Lng: 81.6820},
	"Trincomalee":  {Lat: 8.5874, Lng: 81.2152},
	"Kurunegala":   {Lat: 7.4863, Lng: 80.3647},
	"Puttalam":     {Lat: 8.0362, Lng: 79.8283},
	"Anuradhapura": {Lat: 8.3114, Lng: 80.4037},
	"Polonnaruwa":  {Lat: 7.9403, Lng: 81.0188},
	"Badulla":      {Lat: 6.9934, Lng: 81.0550},
	"Monaragala":   {Lat: 6.8728, Lng: 81.3507},
	"Ratnapura":    {Lat: 6.6828, Lng: 80.3992},
	"Kegalle":      {Lat: 7.2513, Lng: 80.3464},
}

// Division anchors are approximate town centres. Divisions missing here have
// no bounding box and can only be reached through address matching.
var divisionCoordinates = map[string]Coordinates{
	// Colombo
	"Colombo":                   {Lat: 6.9344, Lng: 79.8428},
	"Thimbirigasyaya":           {Lat: 6.8916, Lng: 79.8632},
	"Dehiwala":                  {Lat: 6.8511, Lng: 79.8659},
	"Ratmalana":                 {Lat: 6.8200, Lng: 79.8800},
	"Moratuwa":                  {Lat: 6.7730, Lng: 79.8816},
	"Kesbewa":                   {Lat: 6.7953, Lng: 79.9400},
	"Maharagama":                {Lat: 6.8480, Lng: 79.9265},
	"Sri Jayawardanapura Kotte": {Lat: 6.8868, Lng: 79.9187},
	"Kolonnawa":                 {Lat: 6.9330, Lng: 79.8950},
	"Kaduwela":                  {Lat: 6.9333, Lng: 79.9833},
	"Homagama":                  {Lat: 6.8410, Lng: 80.0020},
	"Seethawaka":                {Lat: 6.9520, Lng: 80.2040},
	"Padukka":                   {Lat: 6.8400, Lng: 80.0900},

	// Gampaha
	"Negombo":      {Lat: 7.2083, Lng: 79.8358},
	"Katana":       {Lat: 7.2500, Lng: 79.9000},
	"Divulapitiya": {Lat: 7.2240, Lng: 80.0150},
	"Mirigama":     {Lat: 7.2410, Lng: 80.1270},
	"Minuwangoda":  {Lat: 7.1700, Lng: 79.9530},
	"Wattala":      {Lat: 6.9890, Lng: 79.8920},
	"Ja-Ela":       {Lat: 7.0740, Lng: 79.8910},
	"Gampaha":      {Lat: 7.0917, Lng: 79.9997},
	"Attanagalla":  {Lat: 7.1120, Lng: 80.1340},
	"Dompe":        {Lat: 6.9490, Lng: 80.0570},
	"Mahara":       {Lat: 7.0017, Lng: 79.9530},
	"Kelaniya":     {Lat: 6.9550, Lng: 79.9220},
	"Biyagama":     {Lat: 6.9420, Lng: 79.9890},

	// Kalutara
	"Panadura":      {Lat: 6.7133, Lng: 79.9042},
	"Bandaragama":   {Lat: 6.7140, Lng: 79.9880},
	"Horana":        {Lat: 6.7159, Lng: 80.0626},
	"Ingiriya":      {Lat: 6.7440, Lng: 80.1600},
	"Bulathsinhala": {Lat: 6.6690, Lng: 80.1650},
	"Kalutara":      {Lat: 6.5854, Lng: 79.9607},
	"Beruwala":      {Lat: 6.4788, Lng: 79.9828},
	"Dodangoda":     {Lat: 6.5500, Lng: 80.0167},
	"Mathugama":     {Lat: 6.5222, Lng: 80.1140},
	"Agalawatta":    {Lat: 6.5410, Lng: 80.1570},
	"Palindanuwara": {Lat: 6.5200, Lng: 80.2300},

	// Kandy
	"Akurana":            {Lat: 7.3667, Lng: 80.6167},
	"Pathadumbara":       {Lat: 7.3500, Lng: 80.6833},
	"Panvila":            {Lat: 7.3830, Lng: 80.7330},
	"Minipe":             {Lat: 7.2200, Lng: 80.9900},
	"Medadumbara":        {Lat: 7.2830, Lng: 80.8000},
	"Kundasale":          {Lat: 7.2830, Lng: 80.6830},
	"Kandy Four Gravets": {Lat: 7.2906, Lng: 80.6337},
	"Harispattuwa":       {Lat: 7.3450, Lng: 80.5950},
	"Yatinuwara":         {Lat: 7.2500, Lng: 80.5800},
	"Udunuwara":          {Lat: 7.2330, Lng: 80.5330},
	"Doluwa":             {Lat: 7.1800, Lng: 80.6000},
	"Deltota":            {Lat: 7.1900, Lng: 80.6700},
	"Udapalatha":         {Lat: 7.1640, Lng: 80.5770},
	"Ganga Ihala Korale": {Lat: 7.0560, Lng: 80.5340},

	// Matale
	"Galewela":          {Lat: 7.7590, Lng: 80.5680},
	"Dambulla":          {Lat: 7.8600, Lng: 80.6517},
	"Naula":             {Lat: 7.7080, Lng: 80.6530},
	"Pallepola":         {Lat: 7.6170, Lng: 80.6000},
	"Yatawatta":         {Lat: 7.5580, Lng: 80.5870},
	"Matale":            {Lat: 7.4675, Lng: 80.6234},
	"Ambanganga Korale": {Lat: 7.5500, Lng: 80.7700},
	"Laggala-Pallegama": {Lat: 7.6300, Lng: 80.8200},
	"Wilgamuwa":         {Lat: 7.7400, Lng: 80.9200},
	"Rattota":           {Lat: 7.5180, Lng: 80.6780},
	"Ukuwela":           {Lat: 7.4330, Lng: 80.6330},

	// Nuwara Eliya
	"Kothmale":      {Lat: 7.0300, Lng: 80.6300},
	"Hanguranketha": {Lat: 7.1500, Lng: 80.7830},
	"Walapane":      {Lat: 7.0830, Lng: 80.8830},
	"Nuwara Eliya":  {Lat: 6.9497, Lng: 80.7891},
	"Ambagamuwa":    {Lat: 6.9500, Lng: 80.5400},

	// Galle
	"Bentota":            {Lat: 6.4210, Lng: 80.0000},
	"Balapitiya":         {Lat: 6.2690, Lng: 80.0370},
	"Karandeniya":        {Lat: 6.2700, Lng: 80.0900},
	"Elpitiya":           {Lat: 6.2900, Lng: 80.1600},
	"Thawalama":          {Lat: 6.3300, Lng: 80.3300},
	"Neluwa":             {Lat: 6.3800, Lng: 80.3700},
	"Nagoda":             {Lat: 6.2000, Lng: 80.2800},
	"Baddegama":          {Lat: 6.1670, Lng: 80.1830},
	"Ambalangoda":        {Lat: 6.2350, Lng: 80.0540},
	"Hikkaduwa":          {Lat: 6.1395, Lng: 80.1063},
	"Akmeemana":          {Lat: 6.0800, Lng: 80.2700},
	"Galle Four Gravets": {Lat: 6.0535, Lng: 80.2210},
	"Habaraduwa":         {Lat: 5.9900, Lng: 80.3000},
	"Yakkalamulla":       {Lat: 6.1000, Lng: 80.3500},
	"Imaduwa":            {Lat: 6.0300, Lng: 80.3800},

	// Matara
	"Kotapola":            {Lat: 6.2900, Lng: 80.5300},
	"Pitabeddara":         {Lat: 6.2200, Lng: 80.4400},
	"Akuressa":            {Lat: 6.1000, Lng: 80.4800},
	"Kamburupitiya":       {Lat: 6.0730, Lng: 80.5640},
	"Hakmana":             {Lat: 6.0800, Lng: 80.6500},
	"Weligama":            {Lat: 5.9740, Lng: 80.4290},
	"Matara Four Gravets": {Lat: 5.9485, Lng: 80.5353},
	"Devinuwara":          {Lat: 5.9300, Lng: 80.5900},
	"Dickwella":           {Lat: 5.9670, Lng: 80.6970},

	// Hambantota
	"Lunugamvehera":     {Lat: 6.3400, Lng: 81.1900},
	"Sooriyawewa":       {Lat: 6.3200, Lng: 81.0000},
	"Tissamaharama":     {Lat: 6.2790, Lng: 81.2870},
	"Hambantota":        {Lat: 6.1241, Lng: 81.1185},
	"Ambalantota":       {Lat: 6.1170, Lng: 81.0250},
	"Angunakolapelessa": {Lat: 6.1700, Lng: 80.9000},
	"Weeraketiya":       {Lat: 6.1420, Lng: 80.7770},
	"Katuwana":          {Lat: 6.2700, Lng: 80.7000},
	"Walasmulla":        {Lat: 6.1500, Lng: 80.7000},
	"Beliatta":          {Lat: 6.0480, Lng: 80.7340},
	"Tangalle":          {Lat: 6.0240, Lng: 80.7940},

	// Jaffna
	"Jaffna":         {Lat: 9.6615, Lng: 80.0255},
	"Nallur":         {Lat: 9.6750, Lng: 80.0300},
	"Kopay":          {Lat: 9.7000, Lng: 80.0600},
	"Chavakachcheri": {Lat: 9.6580, Lng: 80.1630},
	"Point Pedro":    {Lat: 9.8160, Lng: 80.2330},
	"Karaveddy":      {Lat: 9.7700, Lng: 80.2000},
	"Tellippalai":    {Lat: 9.7830, Lng: 80.0330},
	"Uduvil":         {Lat: 9.7300, Lng: 80.0100},
	"Sandilipay":     {Lat: 9.7400, Lng: 79.9900},
	"Chankanai":      {Lat: 9.7500, Lng: 79.9600},
	"Kayts":          {Lat: 9.6900, Lng: 79.8600},
	"Velanai":        {Lat: 9.6400, Lng: 79.9000},
	"Karainagar":     {Lat: 9.7400, Lng: 79.8800},
	"Delft":          {Lat: 9.5200, Lng: 79.6900},

	// Kilinochchi
	"Karachchi":       {Lat: 9.3803, Lng: 80.3770},
	"Kandavalai":      {Lat: 9.4500, Lng: 80.5000},
	"Pachchilaipalli": {Lat: 9.6000, Lng: 80.3300},
	"Poonakary":       {Lat: 9.5000, Lng: 80.2000},

	// Mannar
	"Mannar Town":  {Lat: 8.9810, Lng: 79.9044},
	"Manthai West": {Lat: 8.9000, Lng: 80.0500},
	"Madhu":        {Lat: 8.8500, Lng: 80.2000},
	"Nanattan":     {Lat: 8.8500, Lng: 80.0000},
	"Musali":       {Lat: 8.6800, Lng: 79.9300},

	// Vavuniya
	"Vavuniya":           {Lat: 8.7514, Lng: 80.4971},
	"Vavuniya North":     {Lat: 8.9000, Lng: 80.5500},
	"Vavuniya South":     {Lat: 8.6700, Lng: 80.5500},
	"Vengalacheddikulam": {Lat: 8.8000, Lng: 80.3000},

	// Mullaitivu
	"Maritimepattu":    {Lat: 9.2671, Lng: 80.8142},
	"Puthukudiyiruppu": {Lat: 9.3200, Lng: 80.7000},
	"Oddusuddan":       {Lat: 9.1500, Lng: 80.6600},
	"Thunukkai":        {Lat: 9.1800, Lng: 80.3200},
	"Manthai East":     {Lat: 9.1800, Lng: 80.4500},
	"Welioya":          {Lat: 8.9800, Lng: 80.7500},

	// Batticaloa
	"Koralai Pattu North":           {Lat: 8.1400, Lng: 81.4000},
	"Koralai Pattu West":            {Lat: 7.9700, Lng: 81.5400},
	"Koralai Pattu":                 {Lat: 7.9300, Lng: 81.5300},
	"Eravur Pattu":                  {Lat: 7.7800, Lng: 81.5700},
	"Eravur Town":                   {Lat: 7.7700, Lng: 81.6100},
	"Manmunai North":                {Lat: 7.7170, Lng: 81.7000},
	"Manmunai West":                 {Lat: 7.6400, Lng: 81.6000},
	"Kattankudy":                    {Lat: 7.6800, Lng: 81.7300},
	"Manmunai Pattu":                {Lat: 7.6500, Lng: 81.7400},
	"Manmunai South-West":           {Lat: 7.5800, Lng: 81.6400},
	"Porativu Pattu":                {Lat: 7.5300, Lng: 81.7000},
	"Manmunai South & Eruvil Pattu": {Lat: 7.5500, Lng: 81.7600},

	// Ampara
	"Dehiattakandiya": {Lat: 7.6700, Lng: 81.0600},
	"Padiyathalawa":   {Lat: 7.4000, Lng: 81.2500},
	"Mahaoya":         {Lat: 7.5300, Lng: 81.3500},
	"Uhana":           {Lat: 7.3600, Lng: 81.6300},
	"Ampara":          {Lat: 7.2975, Lng: 81.6820},
	"Lahugala":        {Lat: 6.8800, Lng: 81.7200},
	"Sammanthurai":    {Lat: 7.3700, Lng: 81.8200},
	"Karaitivu":       {Lat: 7.3600, Lng: 81.8500},
	"Kalmunai":        {Lat: 7.4167, Lng: 81.8167},
	"Sainthamaruthu":  {Lat: 7.3900, Lng: 81.8300},
	"Ninthavur":       {Lat: 7.3400, Lng: 81.8500},
	"Addalachchenai":  {Lat: 7.2800, Lng: 81.8500},
	"Alayadiwembu":    {Lat: 7.2300, Lng: 81.8300},
	"Akkaraipattu":    {Lat: 7.2167, Lng: 81.8500},
	"Thirukkovil":     {Lat: 7.1200, Lng: 81.8500},
	"Pottuvil":        {Lat: 6.8761, Lng: 81.8308},

	// Trincomalee
	"Padavi Sri Pura":              {Lat: 8.9000, Lng: 80.9500},
	"Kuchchaveli":                  {Lat: 8.8200, Lng: 81.1000},
	"Gomarankadawala":              {Lat: 8.6700, Lng: 80.9800},
	"Morawewa":                     {Lat: 8.5300, Lng: 81.0500},
	"Trincomalee Town and Gravets": {Lat: 8.5874, Lng: 81.2152},
	"Thambalagamuwa":               {Lat: 8.5000, Lng: 81.0800},
	"Kinniya":                      {Lat: 8.4970, Lng: 81.1770},
	"Kantale":                      {Lat: 8.3670, Lng: 81.0000},
	"Muttur":                       {Lat: 8.4500, Lng: 81.2700},
	"Seruvila":                     {Lat: 8.3500, Lng: 81.3000},
	"Verugal":                      {Lat: 8.2600, Lng: 81.3600},

	// Kurunegala
	"Giribawa":             {Lat: 8.1500, Lng: 80.2000},
	"Galgamuwa":            {Lat: 8.0000, Lng: 80.2667},
	"Ehetuwewa":            {Lat: 8.0800, Lng: 80.3300},
	"Ambanpola":            {Lat: 7.9200, Lng: 80.2300},
	"Rasnayakapura":        {Lat: 7.8700, Lng: 80.1200},
	"Nikaweratiya":         {Lat: 7.7500, Lng: 80.1167},
	"Polpithigama":         {Lat: 7.8167, Lng: 80.4000},
	"Ibbagamuwa":           {Lat: 7.5600, Lng: 80.4500},
	"Wariyapola":           {Lat: 7.6200, Lng: 80.2400},
	"Kobeigane":            {Lat: 7.6600, Lng: 80.1200},
	"Bingiriya":            {Lat: 7.6010, Lng: 79.9370},
	"Kurunegala":           {Lat: 7.4863, Lng: 80.3647},
	"Mawathagama":          {Lat: 7.4370, Lng: 80.4420},
	"Rideegama":            {Lat: 7.5500, Lng: 80.4900},
	"Kuliyapitiya East":    {Lat: 7.4800, Lng: 80.1000},
	"Kuliyapitiya West":    {Lat: 7.4689, Lng: 80.0401},
	"Udubaddawa":           {Lat: 7.4300, Lng: 79.9700},
	"Pannala":              {Lat: 7.3297, Lng: 80.0244},
	"Narammala":            {Lat: 7.4333, Lng: 80.2167},
	"Alawwa":               {Lat: 7.2910, Lng: 80.2430},
	"Polgahawela":          {Lat: 7.3320, Lng: 80.3000},
	"Panduwasnuwara West":  {Lat: 7.6000, Lng: 80.1000},
	"Panduwasnuwara East":  {Lat: 7.6000, Lng: 80.1700},
	"Bamunakotuwa":         {Lat: 7.5500, Lng: 80.1500},
	"Weerambugedara":       {Lat: 7.5200, Lng: 80.3300},
	"Mallawapitiya":        {Lat: 7.5000, Lng: 80.4000},
	"Maspotha":             {Lat: 7.4800, Lng: 80.3000},

	// Puttalam
	"Kalpitiya":        {Lat: 8.2300, Lng: 79.7600},
	"Puttalam":         {Lat: 8.0362, Lng: 79.8283},
	"Mundel":           {Lat: 7.8000, Lng: 79.8300},
	"Anamaduwa":        {Lat: 7.8800, Lng: 80.0000},
	"Pallama":          {Lat: 7.6800, Lng: 79.9200},
	"Arachchikattuwa":  {Lat: 7.6800, Lng: 79.8300},
	"Chilaw":           {Lat: 7.5758, Lng: 79.7953},
	"Madampe":          {Lat: 7.5000, Lng: 79.8400},
	"Nattandiya":       {Lat: 7.4100, Lng: 79.8700},
	"Wennappuwa":       {Lat: 7.3500, Lng: 79.8500},
	"Dankotuwa":        {Lat: 7.3000, Lng: 79.8800},
	"Karuwalagaswewa":  {Lat: 8.0200, Lng: 80.0500},

	// Anuradhapura
	"Padaviya":                  {Lat: 8.8000, Lng: 80.7600},
	"Medawachchiya":             {Lat: 8.5400, Lng: 80.4900},
	"Nuwaragam Palatha Central": {Lat: 8.3500, Lng: 80.3800},
	"Rambewa":                   {Lat: 8.4400, Lng: 80.5000},
	"Kahatagasdigiliya":         {Lat: 8.4200, Lng: 80.6900},
	"Horowpothana":              {Lat: 8.5700, Lng: 80.8700},
	"Mihinthale":                {Lat: 8.3500, Lng: 80.5100},
	"Nuwaragam Palatha East":    {Lat: 8.3114, Lng: 80.4037},
	"Nachchaduwa":               {Lat: 8.2600, Lng: 80.4700},
	"Nochchiyagama":             {Lat: 8.2700, Lng: 80.2100},
	"Thambuttegama":             {Lat: 8.1500, Lng: 80.3000},
	"Thalawa":                   {Lat: 8.2300, Lng: 80.3500},
	"Thirappane":                {Lat: 8.2000, Lng: 80.5500},
	"Kekirawa":                  {Lat: 8.0370, Lng: 80.5980},
	"Ipalogama":                 {Lat: 8.0800, Lng: 80.4800},

	// Polonnaruwa
	"Hingurakgoda": {Lat: 8.0400, Lng: 80.9500},
	"Medirigiriya": {Lat: 8.1500, Lng: 80.9700},
	"Welikanda":    {Lat: 7.9500, Lng: 81.2000},
	"Dimbulagala":  {Lat: 7.8800, Lng: 81.1100},
	"Thamankaduwa": {Lat: 7.9403, Lng: 81.0188},
	"Elahera":      {Lat: 7.7500, Lng: 80.8000},

	// Badulla
	"Mahiyanganaya": {Lat: 7.3189, Lng: 80.9906},
	"Passara":       {Lat: 6.9360, Lng: 81.1520},
	"Lunugala":      {Lat: 7.0300, Lng: 81.2000},
	"Badulla":       {Lat: 6.9934, Lng: 81.0550},
	"Hali-Ela":      {Lat: 6.9500, Lng: 81.0300},
	"Welimada":      {Lat: 6.9000, Lng: 80.9100},
	"Ella":          {Lat: 6.8667, Lng: 81.0466},
	"Bandarawela":   {Lat: 6.8290, Lng: 80.9870},
	"Haputale":      {Lat: 6.7660, Lng: 80.9580},
	"Haldummulla":   {Lat: 6.7700, Lng: 80.8800},

	// Monaragala
	"Bibile":         {Lat: 7.1600, Lng: 81.2200},
	"Medagama":       {Lat: 7.0860, Lng: 81.2740},
	"Siyambalanduwa": {Lat: 6.9000, Lng: 81.5500},
	"Monaragala":     {Lat: 6.8728, Lng: 81.3507},
	"Badalkumbura":   {Lat: 6.8900, Lng: 81.2300},
	"Buttala":        {Lat: 6.7560, Lng: 81.2170},
	"Wellawaya":      {Lat: 6.7300, Lng: 81.1000},
	"Thanamalvila":   {Lat: 6.4400, Lng: 81.1300},
	"Kataragama":     {Lat: 6.4130, Lng: 81.3340},

	// Ratnapura
	"Eheliyagoda":  {Lat: 6.8500, Lng: 80.2700},
	"Kuruvita":     {Lat: 6.7800, Lng: 80.3600},
	"Kiriella":     {Lat: 6.7500, Lng: 80.2700},
	"Ratnapura":    {Lat: 6.6828, Lng: 80.3992},
	"Balangoda":    {Lat: 6.6470, Lng: 80.6980},
	"Opanayaka":    {Lat: 6.6000, Lng: 80.6300},
	"Pelmadulla":   {Lat: 6.6200, Lng: 80.5400},
	"Elapatha":     {Lat: 6.6500, Lng: 80.3600},
	"Kalawana":     {Lat: 6.5300, Lng: 80.4000},
	"Nivithigala":  {Lat: 6.6000, Lng: 80.4500},
	"Kahawatta":    {Lat: 6.5800, Lng: 80.5700},
	"Godakawela":   {Lat: 6.5000, Lng: 80.6500},
	"Embilipitiya": {Lat: 6.3430, Lng: 80.8490},
	"Kolonna":      {Lat: 6.4000, Lng: 80.6900},

	// Kegalle
	"Rambukkana":   {Lat: 7.3200, Lng: 80.3900},
	"Mawanella":    {Lat: 7.2500, Lng: 80.4500},
	"Aranayaka":    {Lat: 7.2000, Lng: 80.4700},
	"Kegalle":      {Lat: 7.2513, Lng: 80.3464},
	"Galigamuwa":   {Lat: 7.2300, Lng: 80.3000},
	"Warakapola":   {Lat: 7.2300, Lng: 80.2000},
	"Ruwanwella":   {Lat: 7.0500, Lng: 80.2500},
	"Yatiyantota":  {Lat: 7.0300, Lng: 80.3000},
	"Dehiowita":    {Lat: 6.9700, Lng: 80.2700},
	"Deraniyagala": {Lat: 6.9300, Lng: 80.3400},
}
