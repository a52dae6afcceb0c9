package keiri_core

type KamokuType string

const (
	RevenueType KamokuType = "revenue"
	ExpenseType KamokuType = "expense"
)

type KamokuID string

// revenue
const (
	SalesKamoku KamokuID = "sales"
)

// expense
const (
	TravelKamoku        KamokuID = "travel"
	EquipmentKamoku     KamokuID = "equipment"
	CommunicationKamoku KamokuID = "communication"
	EntertainmentKamoku KamokuID = "entertainment"
	SuppliesKamoku      KamokuID = "supplies"
	OutsourceKamoku     KamokuID = "outsource"
	AdvertisingKamoku   KamokuID = "advertising"
	RentKamoku          KamokuID = "rent"
	UtilityKamoku       KamokuID = "utility"
	InsuranceKamoku     KamokuID = "insurance"
	DepreciationKamoku  KamokuID = "depreciation"
	VehicleKamoku       KamokuID = "vehicle"
	TaxKamoku           KamokuID = "tax"
	SubscriptionKamoku  KamokuID = "subscription"
	RepairKamoku        KamokuID = "repair"
	MiscKamoku          KamokuID = "misc"
)

// CashKamokuName is the counter account every derived journal entry
// books against. Single cash/bank book, no per-wallet split.
const CashKamokuName = "現金預金"

type Kamoku struct {
	ID    KamokuID   `json:"id"`
	Name  string     `json:"name"`
	Type  KamokuType `json:"type"`
	Anbun bool       `json:"anbun"`
}

func DefaultKamoku() []*Kamoku {
	return []*Kamoku{
		{ID: SalesKamoku, Name: "売上高", Type: RevenueType},
		{ID: TravelKamoku, Name: "旅費交通費", Type: ExpenseType},
		{ID: EquipmentKamoku, Name: "消耗品費", Type: ExpenseType},
		{ID: CommunicationKamoku, Name: "通信費", Type: ExpenseType, Anbun: true},
		{ID: EntertainmentKamoku, Name: "接待交際費", Type: ExpenseType},
		{ID: SuppliesKamoku, Name: "事務用品費", Type: ExpenseType},
		{ID: OutsourceKamoku, Name: "外注費", Type: ExpenseType},
		{ID: AdvertisingKamoku, Name: "広告宣伝費", Type: ExpenseType},
		{ID: RentKamoku, Name: "地代家賃", Type: ExpenseType, Anbun: true},
		{ID: UtilityKamoku, Name: "水道光熱費", Type: ExpenseType, Anbun: true},
		{ID: InsuranceKamoku, Name: "保険料", Type: ExpenseType},
		{ID: DepreciationKamoku, Name: "減価償却費", Type: ExpenseType},
		{ID: VehicleKamoku, Name: "車両費", Type: ExpenseType, Anbun: true},
		{ID: TaxKamoku, Name: "租税公課", Type: ExpenseType},
		{ID: SubscriptionKamoku, Name: "新聞図書費", Type: ExpenseType},
		{ID: RepairKamoku, Name: "修繕費", Type: ExpenseType},
		{ID: MiscKamoku, Name: "雑費", Type: ExpenseType},
	}
}

var kamokuIndex = func() map[KamokuID]*Kamoku {
	index := map[KamokuID]*Kamoku{}
	for _, k := range DefaultKamoku() {
		index[k.ID] = k
	}
	return index
}()

// KamokuByID resolves a kamoku from the fixed chart of accounts. The
// second return reports whether the id is known, unknown ids are not
// an error here, display code falls back via KamokuLabel.
func KamokuByID(id KamokuID) (*Kamoku, bool) {
	k, ok := kamokuIndex[id]
	return k, ok
}

// KamokuLabel returns the display name for an account id, falling back
// to the raw id when the reference data does not know it.
func KamokuLabel(id KamokuID) string {
	if k, ok := kamokuIndex[id]; ok {
		return k.Name
	}
	return string(id)
}

type DivisionID string

const (
	DataDivision      DivisionID = "data"
	BusinessDivision  DivisionID = "business"
	EditorialDivision DivisionID = "editorial"
	ThisPlaceDivision DivisionID = "thisplace"
	YoutubeDivision   DivisionID = "youtube"
	GeneralDivision   DivisionID = "general"
)

type Division struct {
	ID     DivisionID `json:"id"`
	Name   string     `json:"name"`
	Abbr   string     `json:"abbr"`
	Color  string     `json:"color"`
	Prefix string     `json:"prefix"`
}

func DefaultDivisions() []*Division {
	return []*Division{
		{ID: DataDivision, Name: "観光データサイエンス", Abbr: "DATA", Color: "#D4A03A", Prefix: "DATA"},
		{ID: BusinessDivision, Name: "観光事業の設計・実装", Abbr: "BIZ", Color: "#1E3A5F", Prefix: "BIZ"},
		{ID: EditorialDivision, Name: "編集・体験設計", Abbr: "EDIT", Color: "#81D8D0", Prefix: "EDIT"},
		{ID: ThisPlaceDivision, Name: "THIS PLACE", Abbr: "TP", Color: "#FF5F45", Prefix: "TP"},
		{ID: YoutubeDivision, Name: "YouTube", Abbr: "YT", Color: "#C23728", Prefix: "YT"},
		{ID: GeneralDivision, Name: "共通（按分対象）", Abbr: "GEN", Color: "#C4B49A", Prefix: "GEN"},
	}
}

var divisionIndex = func() map[DivisionID]*Division {
	index := map[DivisionID]*Division{}
	for _, d := range DefaultDivisions() {
		index[d.ID] = d
	}
	return index
}()

func DivisionByID(id DivisionID) (*Division, bool) {
	d, ok := divisionIndex[id]
	return d, ok
}

func DivisionLabel(id DivisionID) string {
	if d, ok := divisionIndex[id]; ok {
		return d.Name
	}
	return string(id)
}

type RevenueKind struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func DefaultRevenueKinds() []*RevenueKind {
	return []*RevenueKind{
		{ID: "consulting", Name: "コンサルティング報酬"},
		{ID: "production", Name: "制作費"},
		{ID: "ad_revenue", Name: "広告収益（YouTube）"},
		{ID: "affiliate", Name: "アフィリエイト"},
		{ID: "tieup", Name: "タイアップ"},
		{ID: "license", Name: "ライセンス（写真等）"},
		{ID: "other", Name: "その他"},
	}
}

type ProjectStatus string

const (
	ProjectOrdered   ProjectStatus = "ordered"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
)

type StatusInfo struct {
	ID    ProjectStatus `json:"id"`
	Name  string        `json:"name"`
	Color string        `json:"color"`
}

func DefaultProjectStatus() []*StatusInfo {
	return []*StatusInfo{
		{ID: ProjectOrdered, Name: "受注", Color: "#D4A03A"},
		{ID: ProjectActive, Name: "進行中", Color: "#1B4D3E"},
		{ID: ProjectCompleted, Name: "完了", Color: "#C4B49A"},
	}
}

type OwnerKey string

const (
	OwnerAll     OwnerKey = "all"
	OwnerTomo    OwnerKey = "tomo"
	OwnerToshiki OwnerKey = "toshiki"
)

type Owner struct {
	Key  OwnerKey `json:"key"`
	Name string   `json:"name"`
}

func DefaultOwners() []*Owner {
	return []*Owner{
		{Key: OwnerAll, Name: "全体"},
		{Key: OwnerTomo, Name: "トモ"},
		{Key: OwnerToshiki, Name: "トシキ"},
	}
}

func OwnerLabel(key OwnerKey) string {
	for _, o := range DefaultOwners() {
		if o.Key == key {
			return o.Name
		}
	}
	return string(key)
}

type AssetCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func DefaultAssetCategories() []*AssetCategory {
	return []*AssetCategory{
		{ID: "camera", Name: "カメラ"},
		{ID: "lens", Name: "レンズ"},
		{ID: "pc", Name: "PC"},
		{ID: "drone", Name: "ドローン"},
		{ID: "other", Name: "その他"},
	}
}
