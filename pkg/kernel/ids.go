package kernel

type UserID string

func NewUserID(id string) UserID { return UserID(id) }
func (u UserID) String() string  { return string(u) }
func (u UserID) IsEmpty() bool   { return string(u) == "" }

type PostingID string

func NewPostingID(id string) PostingID { return PostingID(id) }
func (p PostingID) String() string     { return string(p) }
func (p PostingID) IsEmpty() bool      { return string(p) == "" }

type ApplicationID string

func NewApplicationID(id string) ApplicationID { return ApplicationID(id) }
func (a ApplicationID) String() string         { return string(a) }
func (a ApplicationID) IsEmpty() bool          { return string(a) == "" }

type OfferID string

func NewOfferID(id string) OfferID { return OfferID(id) }
func (o OfferID) String() string   { return string(o) }
func (o OfferID) IsEmpty() bool    { return string(o) == "" }
