package domain

// BlockKind is the kind of a document block.
type BlockKind string

const (
	BlockH1        BlockKind = "h1"
	BlockH2        BlockKind = "h2"
	BlockH3        BlockKind = "h3"
	BlockParagraph BlockKind = "p"
	BlockImage     BlockKind = "img"
)

type Image struct {
	Title  string
	Source string
}

// Block is one element of a Document. Images is only set for BlockImage.
type Block struct {
	Kind   BlockKind
	Text   string
	Images []Image
}

// Document is an ordered sequence of blocks rendered to markdown by the app layer.
type Document []Block

func H1(text string) Block { return Block{Kind: BlockH1, Text: text} }
func H2(text string) Block { return Block{Kind: BlockH2, Text: text} }
func H3(text string) Block { return Block{Kind: BlockH3, Text: text} }
func P(text string) Block  { return Block{Kind: BlockParagraph, Text: text} }

func Img(images ...Image) Block {
	return Block{Kind: BlockImage, Images: images}
}

// Link is an external navigation target.
type Link struct {
	Title string
	URL   string
}

// Detail is everything a view needs to display one Pokémon.
type Detail struct {
	ID       int
	Title    string
	Document Document
	Links    []Link
}

// DefaultTitle is the navigation title used without a record.
const DefaultTitle = "Pokédex"

// EmptyDetail is the cleared state shown while loading or after a failed lookup.
func EmptyDetail() Detail {
	return Detail{Title: DefaultTitle, Document: Document{}, Links: []Link{}}
}

// IsEmpty reports whether d carries no record.
func (d Detail) IsEmpty() bool {
	return d.ID == 0
}
